package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindCandidates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty text", in: "", want: []string{}},
		{name: "no numbers", in: "случайный текст без номеров", want: []string{}},
		{name: "trunk code with parentheses", in: "Звоните мне: 8(912)345-67-89", want: []string{"8(912)345-67-89"}},
		{
			name: "plus seven with spaces and compact trunk form",
			in:   "+7 912 345 67 89 и снова 89123456789",
			want: []string{"+7 912 345 67 89", "89123456789"},
		},
		{name: "bare mobile", in: "мой номер 9123456789", want: []string{"9123456789"}},
		{name: "bare mobile after cyrillic", in: "номер9123456789", want: []string{"9123456789"}},
		{name: "bare mobile glued to digits", in: "19123456789", want: []string{}},
		{name: "too short", in: "короткий 812345", want: []string{}},
		{
			name: "two hyphenated numbers",
			in:   "8-912-345-67-89 and 8-926-111-22-33",
			want: []string{"8-912-345-67-89", "8-926-111-22-33"},
		},
		{name: "dots and space after prefix", in: "tel. +7 (495) 123.45.67", want: []string{"+7 (495) 123.45.67"}},
		{name: "four digit exchange and tail", in: "8 912 3456 78 9012", want: []string{"8 912 3456 78 9012"}},
		{name: "stray closing parenthesis", in: "8 912) 345-67-89", want: []string{}},
		{
			name: "unclosed parenthesis falls back to bare mobile",
			in:   "8(912 345-67-89",
			want: []string{"912 345-67-89"},
		},
		{name: "invalid utf-8 around number", in: "\xff8 912 345 67 89\xfe", want: []string{"8 912 345 67 89"}},
		{name: "no-break spaces", in: "тел. 8\u00a0912\u00a0345\u00a067\u00a089", want: []string{"8\u00a0912\u00a0345\u00a067\u00a089"}},
		{
			name: "no-break space around parentheses",
			in:   "+7\u00a0(912)\u00a0345-67-89",
			want: []string{"+7\u00a0(912)\u00a0345-67-89"},
		},
		{name: "narrow no-break and thin spaces", in: "8\u202f912\u2009345\u200967\u200989", want: []string{"8\u202f912\u2009345\u200967\u200989"}},
		{name: "vertical tab", in: "8\v912\v345\v67\v89", want: []string{"8\v912\v345\v67\v89"}},
		{name: "unicode dash is not a separator", in: "8—912—345—67—89", want: []string{}},
		{
			name: "adjacent numbers do not overlap",
			in:   "89123456789 89261112233",
			want: []string{"89123456789", "89261112233"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindCandidates(tt.in))
		})
	}
}
