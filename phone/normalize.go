package phone

import (
	stderrors "errors"
	"regexp"
	"strings"

	"github.com/vortex-fintech/phonex/errors"
)

const (
	// DigitCount is the payload of a canonical number: country code 7 plus 10 subscriber digits.
	DigitCount = 11
	// CanonicalLength is len("+7(DDD)DDD-DD-DD").
	CanonicalLength = 18

	field = "phone"

	ReasonEmpty         = "empty"
	ReasonInvalidLength = "invalid_length"
	ReasonInvalidPrefix = "invalid_prefix"
)

// ErrInvalidNumber is matched (errors.Is) by every rejection returned from Normalize.
var ErrInvalidNumber = stderrors.New("invalid phone number")

var canonicalPattern = regexp.MustCompile(`^\+7\(\d{3}\)\d{3}-\d{2}-\d{2}$`)

// Normalize converts a candidate into +7(DDD)DDD-DD-DD.
//
// All non-digits are dropped, a leading trunk code 8 becomes 7 and a bare leading
// 9 gets 7 prepended. Anything that does not end up with exactly 11 digits
// starting with 7 is rejected with an errors.DomainError wrapping ErrInvalidNumber.
// The leading-7 check is stricter than a length-only check: an 11-digit input such
// as "12345678901" fails with ReasonInvalidPrefix instead of being rendered as +7.
// Candidates from FindCandidates always start with +7, 8 or 9 and never hit it.
func Normalize(candidate string) (string, error) {
	digits := onlyDigits(candidate)
	if digits == "" {
		return "", errors.WrapInvariant(ErrInvalidNumber, field, ReasonEmpty)
	}

	switch digits[0] {
	case '8':
		digits = "7" + digits[1:]
	case '9':
		digits = "7" + digits
	}

	if len(digits) != DigitCount {
		return "", errors.WrapInvariant(ErrInvalidNumber, field, ReasonInvalidLength)
	}
	// digits[0] is rendered as the literal "+7".
	if digits[0] != '7' {
		return "", errors.WrapInvariant(ErrInvalidNumber, field, ReasonInvalidPrefix)
	}

	var b strings.Builder
	b.Grow(CanonicalLength)
	b.WriteString("+7(")
	b.WriteString(digits[1:4])
	b.WriteByte(')')
	b.WriteString(digits[4:7])
	b.WriteByte('-')
	b.WriteString(digits[7:9])
	b.WriteByte('-')
	b.WriteString(digits[9:11])
	return b.String(), nil
}

// IsCanonical reports whether s is exactly of the form +7(DDD)DDD-DD-DD.
func IsCanonical(s string) bool {
	return len(s) == CanonicalLength && canonicalPattern.MatchString(s)
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
