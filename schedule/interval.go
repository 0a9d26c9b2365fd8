// Package schedule holds the pure scheduling core: clock-time intervals,
// conflict detection between tasks and weekly-recurring subjects, recurrence
// expansion, and the entry guards the CRUD layer runs before persisting.
// Everything here is a deterministic function of its inputs; no I/O.
package schedule

import (
	"strconv"
	"strings"

	"taskmaster/model"
)

// DateLayout is the calendar date format used throughout ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// ParseClock converts an "HH:mm" clock string to minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, &ParseError{Input: s, Reason: "expected HH:mm"}
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, &ParseError{Input: s, Reason: "hour out of range"}
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, &ParseError{Input: s, Reason: "minute out of range"}
	}
	return h*60 + m, nil
}

// Overlaps reports whether two weekly slots intersect. Slots on different
// days never overlap. Minute ranges are half-open, so back-to-back slots
// (a ends exactly when b starts) do not overlap. Slots with unparseable
// times are treated as non-overlapping.
func Overlaps(a, b model.TimeSlot) bool {
	if a.Day != b.Day {
		return false
	}
	return clockRangesOverlap(a.StartTime, a.EndTime, b.StartTime, b.EndTime)
}

func clockRangesOverlap(start1, end1, start2, end2 string) bool {
	s1, err := ParseClock(start1)
	if err != nil {
		return false
	}
	e1, err := ParseClock(end1)
	if err != nil {
		return false
	}
	s2, err := ParseClock(start2)
	if err != nil {
		return false
	}
	e2, err := ParseClock(end2)
	if err != nil {
		return false
	}
	return !(e1 <= s2 || s1 >= e2)
}
