package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nmthanh/backoffice-api/internal/domain/format"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"50000đ", "50000"},
		{"50000", "50000"},
		{"185000đ", "185000"},
		{"12,5đ", "12.5"},
		{"", "0"},
		{"đ", "0"},
		{"abc", "0"},
	}
	for _, tc := range cases {
		got := format.ParsePrice(tc.in)
		want, _ := decimal.NewFromString(tc.want)
		assert.True(t, got.Equal(want), "ParsePrice(%q) = %s, want %s", tc.in, got, want)
	}
}

func TestCanonicalPrice(t *testing.T) {
	assert.Equal(t, "50000đ", format.CanonicalPrice("50000"))
	assert.Equal(t, "50000đ", format.CanonicalPrice("50000đ"), "suffixed value passes through")
	assert.Equal(t, "", format.CanonicalPrice(""), "empty stays empty")
}
