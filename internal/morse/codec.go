// Package morse translates between plain text and Morse code using a fixed
// symbol table. Both directions are total: unsupported characters encode to
// Unknown and unparseable patterns are dropped when decoding.
package morse

import "strings"

const (
	// Unknown stands in for any character outside the symbol table
	Unknown = "#"

	LetterSeparator = " "
	WordSeparator   = " / "
)

// Encode converts plain text to Morse. Case is ignored and newlines count
// as word breaks.
func Encode(text string) string {
	text = strings.ReplaceAll(strings.ToLower(text), "\n", " ")

	words := strings.Split(text, " ")
	encoded := make([]string, len(words))

	for i, word := range words {
		letters := make([]string, 0, len(word))
		for _, char := range word {
			if pattern, ok := Lookup(char); ok {
				letters = append(letters, pattern)
			} else {
				letters = append(letters, Unknown)
			}
		}
		encoded[i] = strings.Join(letters, LetterSeparator)
	}

	return strings.Join(encoded, WordSeparator)
}

// Decode converts Morse back to plain text. Words may be separated by "/"
// (with or without surrounding spaces) or by newlines. Every decoded word,
// the last one included, is followed by a single space.
func Decode(code string) string {
	code = strings.ReplaceAll(code, "\n", "/")

	var builder strings.Builder
	for _, word := range strings.Split(code, "/") {
		for _, token := range strings.Split(word, " ") {
			if token == "" {
				continue
			}
			if char, ok := Reverse(token); ok {
				builder.WriteRune(char)
			} else if token == Unknown {
				builder.WriteString(Unknown)
			}
		}
		builder.WriteString(" ")
	}

	return builder.String()
}
