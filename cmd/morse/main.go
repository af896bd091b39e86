// Command morse translates between text and Morse code without the GUI.
//
//	morse encode [-copy] [text...]
//	morse decode [-copy] [code...]
//
// Without arguments the input is read from stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"telegraph/internal/morse"

	"github.com/atotto/clipboard"
)

var errUsage = errors.New("usage: morse encode|decode [-copy] [input...]")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, clipboard.WriteAll); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, copyText func(string) error) error {
	if len(args) == 0 {
		return errUsage
	}

	var translate func(string) string
	switch args[0] {
	case "encode":
		translate = morse.Encode
	case "decode":
		translate = morse.Decode
	default:
		return errUsage
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	copyResult := fs.Bool("copy", false, "Also copy the result to the clipboard")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	input := strings.Join(fs.Args(), " ")
	if fs.NArg() == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	}

	output := translate(input)
	if _, err := fmt.Fprintln(stdout, output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if *copyResult {
		if err := copyText(output); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
