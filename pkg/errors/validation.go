package errors

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the accepted textual form of a calendar date.
const DateLayout = "2006-01-02"

// MaxSeriesLength bounds the number of daily values accepted from untrusted input.
// A month never exceeds 31 days; the slack allows multi-month views without letting
// a request allocate unbounded geometry.
const MaxSeriesLength = 366

// MaxDimension bounds the surface width and height in pixels.
const MaxDimension = 8192

// ValidateDimensions checks that a surface of width x height pixels is
// finite, non-negative and within MaxDimension on both axes.
func ValidateDimensions(width, height float64) error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", width}, {"height", height}} {
		switch {
		case math.IsNaN(d.v) || math.IsInf(d.v, 0):
			return New(ErrCodeInvalidInput, "%s must be a finite number", d.name)
		case d.v < 0:
			return New(ErrCodeInvalidInput, "%s cannot be negative", d.name)
		case d.v > MaxDimension:
			return New(ErrCodeInvalidInput, "%s too large: %g (max %d)", d.name, d.v, MaxDimension)
		}
	}
	return nil
}

// ValidateDate checks that s is a YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if s == "" {
		return New(ErrCodeInvalidDate, "date cannot be empty")
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return Wrap(ErrCodeInvalidDate, err, "invalid date %q (want YYYY-MM-DD)", s)
	}
	return nil
}

// ValidateSeriesLength rejects series longer than MaxSeriesLength.
// Empty series are valid: they lay out to nothing.
func ValidateSeriesLength(n int) error {
	if n > MaxSeriesLength {
		return New(ErrCodeInvalidSeries, "series too long: %d values (max %d)", n, MaxSeriesLength)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(allowed, ", "))
}

// ValidateDimensionID checks that a host dimension id is a simple identifier.
func ValidateDimensionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDimension, "dimension id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidDimension, "dimension id too long (max 128 characters)")
	}
	for _, r := range id {
		if !(r == '_' || r == '.' || r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return New(ErrCodeInvalidDimension, "dimension id contains invalid character %q", r)
		}
	}
	return nil
}
