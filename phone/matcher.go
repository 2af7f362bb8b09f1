package phone

import "regexp"

const (
	// sep is one optional hyphen, dot or whitespace rune. Whitespace covers the
	// Unicode separators (no-break space included) next to Go's ASCII \s.
	sep      = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}\-.]?`
	areaCode = `(?:\(\d{3}\)|\d{3})`
	// Subscriber part after the area code: 3-4, 2 and 2-4 digit blocks.
	subscriber = sep + `\d{3,4}` + sep + `\d{2}` + sep + `\d{2,4}`
)

// candidatePattern matches either a number with a "+7" / "8" prefix or a bare
// mobile number starting with 9 that is not glued to a preceding word or digit.
// Digits and word boundaries are ASCII-only, so Cyrillic text and Unicode dashes
// never take part in a match.
var candidatePattern = regexp.MustCompile(
	`(?:(?:\+7|8)` + sep + areaCode + `|\b9\d{2})` + subscriber,
)

// FindCandidates returns every non-overlapping substring of text that loosely
// resembles a phone number, left to right. The result is never nil.
func FindCandidates(text string) []string {
	found := candidatePattern.FindAllString(text, -1)
	if found == nil {
		return []string{}
	}
	return found
}
