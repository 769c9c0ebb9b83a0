package calendar

import (
	"strconv"
	"time"
)

// DefaultTodayIndex is the index classified as today when no start date is set.
const DefaultTodayIndex = 15

// DayLabel is the text drawn under one day's slot.
type DayLabel struct {
	Index int
	X     float64
	Text  string
}

// Positioner reports the left edge of a day's slot.
type Positioner interface {
	Left(i int) float64
}

// Labels returns one label per day of an n-day series starting at start.
//
// A series that starts on the first of a month is numbered 1..n without
// rolling into the following month. Any other start date yields the actual
// day of month of each day, so a series crossing a month boundary reads
// "30, 31, 1, 2".
func Labels(start *Date, n int) []string {
	if start == nil || n <= 0 {
		return nil
	}
	out := make([]string, n)
	if start.Day == 1 {
		for i := range out {
			out[i] = strconv.Itoa(i + 1)
		}
		return out
	}
	day := *start
	for i := range out {
		out[i] = strconv.Itoa(day.Day)
		day = day.AddDays(1)
	}
	return out
}

// DayLabels pairs [Labels] with the left edge of each day's slot.
func DayLabels(start *Date, n int, pos Positioner) []DayLabel {
	texts := Labels(start, n)
	if len(texts) == 0 {
		return nil
	}
	out := make([]DayLabel, len(texts))
	for i, text := range texts {
		out[i] = DayLabel{Index: i, X: pos.Left(i), Text: text}
	}
	return out
}

// TodayIndex counts the day boundaries between start and now.
// A start date on or after now yields 0.
func TodayIndex(start, now Date) int {
	if !start.Before(now) {
		return 0
	}
	return int(now.Time().Sub(start.Time()) / (24 * time.Hour))
}

// TodayIndexAt is [TodayIndex] with now read from clock.
func TodayIndexAt(start Date, clock Clock) int {
	return TodayIndex(start, DateOf(clock.Now()))
}
