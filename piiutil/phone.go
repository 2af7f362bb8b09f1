package piiutil

import (
	"strings"
	"unicode"
)

const (
	shortDigitCountThreshold = 4
	keepShortDigits          = 1
	keepLongDigits           = 4
)

// MaskPhone masks a phone value while preserving formatting symbols.
// It keeps the last 1 or 4 digits:
//   - if total digits <= 4 -> keep 1 last digit
//   - if total digits > 4  -> keep 4 last digits
//
// Only ASCII digits count; letters and other runes are left as they are.
//
// Examples:
//
//	"+7(912)345-67-89" -> "+*(***)***-67-89"
//	"8 912 3456 78"    -> "* *** **56 78"
//	"8123"             -> "***3"
//	"(-)"              -> "(-)"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	maskDigits(runes)
	return string(runes)
}

// maskDigits masks digits in place keeping keepLongDigits or keepShortDigits trailing ones.
func maskDigits(runes []rune) {
	total := 0
	for _, r := range runes {
		if isDigit(r) {
			total++
		}
	}
	if total == 0 {
		return
	}

	keep := keepLongDigits
	if total <= shortDigitCountThreshold {
		keep = keepShortDigits
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if isDigit(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
}

func isDigit(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsDigit(r)
}
