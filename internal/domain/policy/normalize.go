// Package policy holds the credential content rules: username normalization,
// the forbidden-term and breached-password lists, and the username and
// password validators built on them.
package policy

import "strings"

// digitLetters maps each digit to the letter it commonly stands in for.
var digitLetters = map[rune]rune{
	'0': 'o',
	'1': 'i',
	'2': 'z',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'6': 'g',
	'7': 't',
	'8': 'b',
	'9': 'g',
}

// FoldCase lower-cases a username. It is the key credentials are stored and looked up under.
func FoldCase(raw string) string {
	return strings.ToLower(raw)
}

// Normalize lower-cases raw and replaces every ASCII digit with its look-alike
// letter, so "4dm1n" becomes "admin". Used only for content checks.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if letter, ok := digitLetters[r]; ok {
			return letter
		}

		return r
	}, FoldCase(raw))
}
