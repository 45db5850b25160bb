// Package nicestring classifies strings as "nice" using three independent
// lexical rules. A string is nice when at least two of the rules hold.
package nicestring

import "strings"

// forbiddenSubstrings must not occur anywhere in a nice string.
var forbiddenSubstrings = []string{"bu", "ba", "be"} //nolint: gochecknoglobals

const (
	vowels    = "aeiou"
	minVowels = 3
	minRules  = 2
)

// Verdict holds the outcome of every rule along with the final decision.
type Verdict struct {
	// NoForbiddenSubstring is true when none of "bu", "ba", "be" occur.
	NoForbiddenSubstring bool `json:"noForbiddenSubstring"`
	// EnoughVowels is true when the string has at least three of a, e, i, o, u.
	EnoughVowels bool `json:"enoughVowels"`
	// DoubleLetter is true when two adjacent characters are equal.
	DoubleLetter bool `json:"doubleLetter"`
	// Nice is true when at least two of the rules above hold.
	Nice bool `json:"nice"`
}

// Evaluate runs all three rules against s.
func Evaluate(s string) Verdict {
	v := Verdict{
		NoForbiddenSubstring: hasNoForbiddenSubstring(s),
		EnoughVowels:         countVowels(s) >= minVowels,
		DoubleLetter:         hasDoubleLetter(s),
	}

	passed := 0
	for _, ok := range []bool{v.NoForbiddenSubstring, v.EnoughVowels, v.DoubleLetter} {
		if ok {
			passed++
		}
	}
	v.Nice = passed >= minRules

	return v
}

// IsNice reports whether s satisfies at least two of the three rules.
func IsNice(s string) bool {
	return Evaluate(s).Nice
}

func hasNoForbiddenSubstring(s string) bool {
	for _, sub := range forbiddenSubstrings {
		if strings.Contains(s, sub) {
			return false
		}
	}

	return true
}

func countVowels(s string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(vowels, r) {
			n++
		}
	}

	return n
}

func hasDoubleLetter(s string) bool {
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			return true
		}
		prev = r
	}

	return false
}
