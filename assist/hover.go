package assist

import (
	"strings"
	"unicode"

	"github.com/orcatools/orcals/keywords"
)

// Hover returns Markdown documentation for the keyword under the cursor,
// or false when the cursor is not on a known keyword. The heading echoes
// the word exactly as the user typed it; the lookup uppercases the word
// first, so only keywords whose canonical spelling is itself uppercase
// can match.
func Hover(line string, column int) (string, bool) {
	word := wordAt(line, column)
	if word == "" {
		return "", false
	}
	k, ok := keywords.Lookup(strings.ToUpper(word))
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString("**")
	b.WriteString(word)
	b.WriteString("**\n\n")
	b.WriteString(k.Description)
	switch k.Category {
	case keywords.DFTFunctional, keywords.BasisSet:
		b.WriteString("\n\nType: ")
		b.WriteString(k.Type)
	}
	return b.String(), true
}

// wordAt extracts the alphanumeric run around the cursor. Hyphens and
// other punctuation end the word, so hovering "def2-TZVP" sees either
// "def2" or "TZVP" depending on which side of the dash the cursor is on.
func wordAt(line string, column int) string {
	runes := []rune(line)
	if column < 0 {
		column = 0
	}
	if column > len(runes) {
		column = len(runes)
	}

	start := column
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end := column
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	return string(runes[start:end])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
