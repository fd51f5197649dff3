package command

import "strings"

// Tokenize splits a comma-separated parameter-list value into its
// individual tokens. A backslash immediately before a comma escapes it
// (the comma becomes part of the token instead of a separator). No
// whitespace trimming is performed.
func Tokenize(s string) []string {
	var tokens []string
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch == '\\' && i+1 < len(runes) && runes[i+1] == ',' {
			b.WriteRune(',')
			i++
			continue
		}
		if ch == ',' {
			tokens = append(tokens, b.String())
			b.Reset()
			continue
		}
		b.WriteRune(ch)
	}
	tokens = append(tokens, b.String())
	return tokens
}
