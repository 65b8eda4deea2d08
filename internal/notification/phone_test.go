package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already international", "+96170123456", "+96170123456"},
		{"strips formatting", "+961 70-123 456", "+96170123456"},
		{"local with leading zero", "070123456", "+96170123456"},
		{"local without leading zero", "70123456", "+96170123456"},
		{"leading whitespace before plus", "  +96170123456", "+96170123456"},
		{"punctuation stripped", "(70) 123-456", "+96170123456"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePhone(tc.input, "+961"))
		})
	}
}
