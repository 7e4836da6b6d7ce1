package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmthanh/backoffice-api/internal/domain/format"
)

func TestFoldAccents(t *testing.T) {
	cases := map[string]string{
		"Danh sách nguyên liệu": "Danh sach nguyen lieu",
		"Đồ uống":               "Do uong",
		"Tôm sú":                "Tom su",
		"Giá (đ)":               "Gia (d)",
		"ASCII only":            "ASCII only",
		"":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, format.FoldAccents(in), "input %q", in)
	}
}
