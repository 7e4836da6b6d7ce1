// Package format holds the tolerant date and price conversions the admin
// panel relies on. Both are permissive by design: bad input degrades to a
// default instead of failing, and the DateResult/fallback flags make that
// silent correction visible to callers and tests.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CanonicalDateLayout is the storage form for all dates: zero-padded
// DD/MM/YYYY.
const CanonicalDateLayout = "02/01/2006"

// DateResult reports a normalization outcome. FallbackApplied is true when
// the input could not be used and a default (today, or the previous stored
// value) was substituted instead.
type DateResult struct {
	Value           string
	FallbackApplied bool
}

// ParseDate accepts DD/MM/YYYY (zero-padded or not) and YYYY-MM-DD and
// returns the calendar date. Anything else is an error.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, "/"):
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("date %q: want DD/MM/YYYY", s)
		}
		return dateFromParts(parts[2], parts[1], parts[0], s)
	case strings.Contains(s, "-"):
		parts := strings.Split(s, "-")
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD", s)
		}
		return dateFromParts(parts[0], parts[1], parts[2], s)
	default:
		return time.Time{}, fmt.Errorf("date %q: unrecognized format", s)
	}
}

func dateFromParts(y, m, d, orig string) (time.Time, error) {
	year, err := strconv.Atoi(strings.TrimSpace(y))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: bad year", orig)
	}
	month, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: bad month", orig)
	}
	day, err := strconv.Atoi(strings.TrimSpace(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: bad day", orig)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (32/01 -> 01/02); reject
	// anything that did not round-trip.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("date %q: no such calendar date", orig)
	}
	return t, nil
}

// NormalizeDate canonicalizes a date for a create: empty or unparseable
// input falls back to today. Already-canonical input round-trips unchanged.
func NormalizeDate(input string, today time.Time) DateResult {
	if strings.TrimSpace(input) == "" {
		return DateResult{Value: today.Format(CanonicalDateLayout), FallbackApplied: true}
	}
	t, err := ParseDate(input)
	if err != nil {
		return DateResult{Value: today.Format(CanonicalDateLayout), FallbackApplied: true}
	}
	return DateResult{Value: t.Format(CanonicalDateLayout)}
}

// NormalizeDateKeepOld canonicalizes a date for an edit: empty or
// unparseable input keeps the previously stored value instead of today.
func NormalizeDateKeepOld(input, old string) DateResult {
	if strings.TrimSpace(input) == "" {
		return DateResult{Value: old, FallbackApplied: true}
	}
	t, err := ParseDate(input)
	if err != nil {
		return DateResult{Value: old, FallbackApplied: true}
	}
	return DateResult{Value: t.Format(CanonicalDateLayout)}
}
