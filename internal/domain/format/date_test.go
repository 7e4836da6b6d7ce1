package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmthanh/backoffice-api/internal/domain/format"
)

var testToday = time.Date(2025, time.September, 3, 10, 30, 0, 0, time.UTC)

func TestNormalizeDate_EmptyFallsBackToToday(t *testing.T) {
	res := format.NormalizeDate("", testToday)
	assert.Equal(t, "03/09/2025", res.Value)
	assert.True(t, res.FallbackApplied, "empty input must be flagged as a fallback")
}

func TestNormalizeDate_ISOConvertsToCanonical(t *testing.T) {
	res := format.NormalizeDate("2025-08-20", testToday)
	assert.Equal(t, "20/08/2025", res.Value)
	assert.False(t, res.FallbackApplied)
}

// Canonicalization must be idempotent: normalizing an already-canonical date
// yields the same string, and both input formats of the same date agree.
func TestNormalizeDate_Idempotent(t *testing.T) {
	first := format.NormalizeDate("2025-08-20", testToday)
	second := format.NormalizeDate(first.Value, testToday)
	assert.Equal(t, first.Value, second.Value)
	assert.False(t, second.FallbackApplied)
}

func TestNormalizeDate_PadsUnpaddedInput(t *testing.T) {
	res := format.NormalizeDate("5/7/2025", testToday)
	assert.Equal(t, "05/07/2025", res.Value)
	assert.False(t, res.FallbackApplied)
}

func TestNormalizeDate_InvalidFallsBackToToday(t *testing.T) {
	for _, in := range []string{"not-a-date", "32/01/2025", "2025-13-01", "1/2", "N/A"} {
		res := format.NormalizeDate(in, testToday)
		assert.Equal(t, "03/09/2025", res.Value, "input %q", in)
		assert.True(t, res.FallbackApplied, "input %q", in)
	}
}

func TestNormalizeDateKeepOld_EmptyKeepsOld(t *testing.T) {
	res := format.NormalizeDateKeepOld("", "01/01/2024")
	assert.Equal(t, "01/01/2024", res.Value)
	assert.True(t, res.FallbackApplied)
}

func TestNormalizeDateKeepOld_InvalidKeepsOld(t *testing.T) {
	res := format.NormalizeDateKeepOld("garbage", "01/01/2024")
	assert.Equal(t, "01/01/2024", res.Value)
	assert.True(t, res.FallbackApplied)
}

func TestNormalizeDateKeepOld_ValidReplaces(t *testing.T) {
	res := format.NormalizeDateKeepOld("2025-01-15", "01/01/2024")
	assert.Equal(t, "15/01/2025", res.Value)
	assert.False(t, res.FallbackApplied)
}

func TestParseDate_BothFormatsAgree(t *testing.T) {
	a, err := format.ParseDate("20/08/2025")
	require.NoError(t, err)
	b, err := format.ParseDate("2025-08-20")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
