// Package calendar produces the day labels and today index of a month graph.
//
// All arithmetic happens at whole-day granularity: a [Date] carries no time
// of day and no location. Converting a [time.Time] with [DateOf] keeps the
// calendar day as seen in that time's own location, so "today" is the day
// the caller's clock reports.
//
// The current moment is never read implicitly. Callers pass a [Clock] (or an
// explicit now) so labeling and today-index computation stay deterministic
// under test.
package calendar

import (
	"fmt"
	"time"

	"github.com/matzehuels/monthgraph/pkg/errors"
)

// Date is a calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf strips the time of day from t, keeping the day in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate returns the normalized date for year, month and day.
// Out-of-range values roll over the way [time.Date] does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(errors.DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "invalid date %q (want YYYY-MM-DD)", s)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n whole days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock supplies the current moment.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same moment.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
