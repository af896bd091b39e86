package morse

import "sort"

// Symbol pairs a plain-text character with its Morse pattern
type Symbol struct {
	Char    rune
	Pattern string
}

var forward = map[rune]string{
	'a': ".-",
	'b': "-...",
	'c': "-.-.",
	'd': "-..",
	'e': ".",
	'f': "..-.",
	'g': "--.",
	'h': "....",
	'i': "..",
	'j': ".---",
	'k': "-.-",
	'l': ".-..",
	'm': "--",
	'n': "-.",
	'o': "---",
	'p': ".--.",
	'q': "--.-",
	'r': ".-.",
	's': "...",
	't': "-",
	'u': "..-",
	'v': "...-",
	'w': ".--",
	'x': "-..-",
	'y': "-.--",
	'z': "--..",

	'0': "-----",
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",

	'.':  ".-.-.-",
	',':  "--..--",
	'?':  "..--..",
	'\'': ".----.",
	'!':  "-.-.--",
	'/':  "-..-.",
	'(':  "-.--.",
	')':  "-.--.-",
	'&':  ".-...",
	':':  "---...",
	';':  "-.-.-.",
	'=':  "-...-",
	'+':  ".-.-.",
	'-':  "-....-",
	'_':  "..--.-",
	'"':  ".-..-.",
	'$':  "...-..-",
	'@':  ".--.-.",
	'¿':  "..-.-",
	'¡':  "--...-",
}

var reverse = buildReverse(forward)

func buildReverse(table map[rune]string) map[string]rune {
	result := make(map[string]rune, len(table))
	for char, pattern := range table {
		if _, exists := result[pattern]; exists {
			panic("morse: duplicate pattern " + pattern)
		}
		result[pattern] = char
	}
	return result
}

// Lookup returns the pattern for a lowercase character
func Lookup(char rune) (string, bool) {
	pattern, ok := forward[char]
	return pattern, ok
}

// Reverse returns the character whose pattern matches exactly
func Reverse(pattern string) (rune, bool) {
	char, ok := reverse[pattern]
	return char, ok
}

// Symbols returns a copy of the table ordered by character.
func Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(forward))
	for char, pattern := range forward {
		symbols = append(symbols, Symbol{Char: char, Pattern: pattern})
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Char < symbols[j].Char
	})
	return symbols
}
