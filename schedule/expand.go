package schedule

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"taskmaster/model"
)

var rruleWeekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// Expand materializes a subject's weekly pattern into concrete occurrences,
// one per (week, time slot) whose date falls inside the inclusive
// [FromDate, ToDate] range. Partial first and last weeks are clipped. The
// result is ordered by Monday-aligned week, then by slot position within the
// subject. A subject with no slots expands to an empty list.
func Expand(subject *model.Subject) ([]model.Occurrence, error) {
	from, err := time.Parse(DateLayout, subject.FromDate)
	if err != nil {
		return nil, &ParseError{Input: subject.FromDate, Reason: "expected YYYY-MM-DD"}
	}
	to, err := time.Parse(DateLayout, subject.ToDate)
	if err != nil {
		return nil, &ParseError{Input: subject.ToDate, Reason: "expected YYYY-MM-DD"}
	}
	if from.After(to) {
		return nil, &InvalidRangeError{From: subject.FromDate, To: subject.ToDate}
	}

	type slotDate struct {
		date time.Time
		slot int
	}
	var dates []slotDate

	for i, slot := range subject.TimeSlots {
		if slot.Day < 0 || slot.Day > 6 {
			return nil, &ValidationError{Field: "time_slots", Reason: "day of week must be 0-6"}
		}
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   from,
			Byweekday: []rrule.Weekday{rruleWeekdays[slot.Day]},
		})
		if err != nil {
			return nil, err
		}
		for _, d := range rule.Between(from, to, true) {
			dates = append(dates, slotDate{date: d, slot: i})
		}
	}

	sort.SliceStable(dates, func(i, j int) bool {
		wi, wj := WeekStart(dates[i].date), WeekStart(dates[j].date)
		if !wi.Equal(wj) {
			return wi.Before(wj)
		}
		return dates[i].slot < dates[j].slot
	})

	occurrences := make([]model.Occurrence, 0, len(dates))
	for _, d := range dates {
		occurrences = append(occurrences, model.Occurrence{
			SubjectID: subject.SubjectID,
			Date:      d.date.Format(DateLayout),
			TimeSlot:  subject.TimeSlots[d.slot],
		})
	}
	return occurrences, nil
}
