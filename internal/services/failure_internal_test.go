package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCleanDetail(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "page 2: unexpected EOF", "page 2: unexpected EOF"},
		{"invalid utf-8", "malformed hex string str\xaeam", "malformed hex string str�am"},
		{"control characters", "bad\x00 token\x1b\nnext", "bad token next"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanDetail(tt.in))
		})
	}
}

func TestCleanDetailTruncates(t *testing.T) {
	got := cleanDetail(strings.Repeat("é", 5*maxDetailRunes))

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, maxDetailRunes+1, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}
