// Package classify tags day indices as past, today or future.
//
// The rendering surfaces pick one of three bar colors from the [Class] of each
// day. Classification is a pure comparison of a day index against the today
// index and never fails.
package classify

// Class is the temporal category of a day relative to today.
type Class int

const (
	Past Class = iota
	Today
	Future
)

// Classify returns Past when index < today, Today when they are equal and
// Future otherwise.
func Classify(index, today int) Class {
	switch {
	case index < today:
		return Past
	case index == today:
		return Today
	default:
		return Future
	}
}

func (c Class) String() string {
	switch c {
	case Past:
		return "past"
	case Today:
		return "today"
	case Future:
		return "future"
	}
	return "unknown"
}

// Parse maps a name produced by [Class.String] back to its Class.
func Parse(s string) (Class, bool) {
	switch s {
	case "past":
		return Past, true
	case "today":
		return Today, true
	case "future":
		return Future, true
	}
	return 0, false
}
