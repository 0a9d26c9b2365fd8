package schedule

import (
	"sort"
	"time"

	"taskmaster/model"
)

// WeekStart returns the Monday of the week containing t, at midnight in t's
// location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// WeekRange returns the Monday and Sunday bounding the week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	start := WeekStart(t)
	return start, start.AddDate(0, 0, 6)
}

// MonthRange returns the first and last day of the given month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// FilterTasksByRange keeps tasks whose due date falls inside [start, end]
// inclusive. Tasks without a due date, or with one that does not parse, are
// dropped.
func FilterTasksByRange(tasks []*model.Task, start, end time.Time) []*model.Task {
	filtered := make([]*model.Task, 0)
	for _, t := range tasks {
		if t.DueDate == "" {
			continue
		}
		due, err := time.Parse(DateLayout, t.DueDate)
		if err != nil {
			continue
		}
		if due.Before(start) || due.After(end) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// GroupTasksByDate buckets tasks by due date. Within each day, timed tasks
// come first ordered by start time, then untimed tasks ordered by priority
// high to low.
func GroupTasksByDate(tasks []*model.Task) map[string][]*model.Task {
	grouped := make(map[string][]*model.Task)
	for _, t := range tasks {
		if t.DueDate == "" {
			continue
		}
		grouped[t.DueDate] = append(grouped[t.DueDate], t)
	}
	for _, day := range grouped {
		sort.SliceStable(day, func(i, j int) bool {
			a, b := day[i], day[j]
			if (a.StartTime != "") != (b.StartTime != "") {
				return a.StartTime != ""
			}
			if a.StartTime != "" {
				return a.StartTime < b.StartTime
			}
			return priorityWeight(a.Priority) > priorityWeight(b.Priority)
		})
	}
	return grouped
}

// IsOverdue reports whether an incomplete task's due date lies strictly
// before today (by calendar day, not clock time).
func IsOverdue(t *model.Task, now time.Time) bool {
	if t.Completed || t.DueDate == "" {
		return false
	}
	due, err := time.Parse(DateLayout, t.DueDate)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}

func priorityWeight(p model.Priority) int {
	switch p {
	case model.PriorityHigh:
		return 3
	case model.PriorityLow:
		return 1
	default:
		return 2
	}
}
