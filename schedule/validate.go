package schedule

import (
	"strings"
	"time"

	"taskmaster/model"
)

// ValidateTask runs the entry guards for a task before it is persisted.
func ValidateTask(t *model.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Reason: "title must not be empty"}
	}
	if (t.StartTime == "") != (t.EndTime == "") {
		return &ValidationError{Field: "time", Reason: "start and end time must both be set or both be empty"}
	}
	if t.StartTime != "" {
		start, err := ParseClock(t.StartTime)
		if err != nil {
			return err
		}
		end, err := ParseClock(t.EndTime)
		if err != nil {
			return err
		}
		if start >= end {
			return &ValidationError{Field: "time", Reason: "start time must be before end time"}
		}
	}
	if t.DueDate != "" {
		if _, err := time.Parse(DateLayout, t.DueDate); err != nil {
			return &ParseError{Input: t.DueDate, Reason: "expected YYYY-MM-DD"}
		}
	}
	return nil
}

// ValidateSubject runs the entry guards for a subject: a sane date range and
// internally consistent slots. Overlap against other subjects is the conflict
// detector's job; a subject overlapping itself is rejected outright.
func ValidateSubject(s *model.Subject) error {
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name must not be empty"}
	}
	from, err := time.Parse(DateLayout, s.FromDate)
	if err != nil {
		return &ParseError{Input: s.FromDate, Reason: "expected YYYY-MM-DD"}
	}
	to, err := time.Parse(DateLayout, s.ToDate)
	if err != nil {
		return &ParseError{Input: s.ToDate, Reason: "expected YYYY-MM-DD"}
	}
	if from.After(to) {
		return &InvalidRangeError{From: s.FromDate, To: s.ToDate}
	}

	for i, slot := range s.TimeSlots {
		if slot.Day < 0 || slot.Day > 6 {
			return &ValidationError{Field: "time_slots", Reason: "day of week must be 0-6"}
		}
		start, err := ParseClock(slot.StartTime)
		if err != nil {
			return err
		}
		end, err := ParseClock(slot.EndTime)
		if err != nil {
			return err
		}
		if start >= end {
			return &ValidationError{Field: "time_slots", Reason: "slot start time must be before end time"}
		}
		for j := i + 1; j < len(s.TimeSlots); j++ {
			if Overlaps(slot, s.TimeSlots[j]) {
				return &ValidationError{
					Field:  "time_slots",
					Reason: "time slots overlap on " + dayName(slot.Day),
				}
			}
		}
	}
	return nil
}
