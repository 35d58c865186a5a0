package rename

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SequentialName returns the stem assigned to counter value n.
func SequentialName(prefix string, n int) string {
	return prefix + "_" + strconv.Itoa(n)
}

// Transform computes the new stem for the case-mapping modes. The stem is
// returned unchanged for SequentialRename, which is driven by the Resolver.
func Transform(mode Mode, stem string) string {
	switch mode {
	case Uppercase:
		return ToUpper(stem)
	case Lowercase:
		return ToLower(stem)
	case FirstLetterUppercase:
		return FirstLetterUpper(stem)
	case FirstLetterLowercase:
		return FirstLetterLower(stem)
	}
	return stem
}

// ToUpper applies full Unicode upper-case mapping ("ß" becomes "SS").
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ToLower applies full Unicode lower-case mapping.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// FirstLetterUpper upper-cases the first character when it is alphabetic.
func FirstLetterUpper(s string) string {
	return mapFirst(s, ToUpper)
}

// FirstLetterLower lower-cases the first character when it is alphabetic.
func FirstLetterLower(s string) string {
	return mapFirst(s, ToLower)
}

func mapFirst(s string, fn func(string) string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if !isAlphabetic(r) {
		return s
	}
	return fn(string(r)) + s[size:]
}

func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.Letter, unicode.Nl, unicode.Other_Alphabetic)
}
