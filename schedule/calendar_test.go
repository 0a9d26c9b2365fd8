package schedule

import (
	"testing"
	"time"

	"taskmaster/model"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-01", "2024-01-01"}, // Monday maps to itself
		{"2024-01-03", "2024-01-01"}, // Wednesday
		{"2024-01-07", "2024-01-01"}, // Sunday belongs to the week started the previous Monday
		{"2024-01-08", "2024-01-08"},
	}
	for _, tt := range tests {
		if got := WeekStart(date(tt.in)).Format(DateLayout); got != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.February)
	if start.Format(DateLayout) != "2024-02-01" {
		t.Errorf("start = %s", start.Format(DateLayout))
	}
	if end.Format(DateLayout) != "2024-02-29" {
		t.Errorf("end = %s, want leap-year February 29th", end.Format(DateLayout))
	}
}

func TestFilterTasksByRange(t *testing.T) {
	tasks := []*model.Task{
		{TaskID: "t1", Title: "before", DueDate: "2023-12-31"},
		{TaskID: "t2", Title: "on start", DueDate: "2024-01-01"},
		{TaskID: "t3", Title: "inside", DueDate: "2024-01-04"},
		{TaskID: "t4", Title: "on end", DueDate: "2024-01-07"},
		{TaskID: "t5", Title: "after", DueDate: "2024-01-08"},
		{TaskID: "t6", Title: "no date"},
		{TaskID: "t7", Title: "bad date", DueDate: "soon"},
	}

	got := FilterTasksByRange(tasks, date("2024-01-01"), date("2024-01-07"))

	if len(got) != 3 {
		t.Fatalf("got %d tasks, want 3", len(got))
	}
	for i, want := range []string{"t2", "t3", "t4"} {
		if got[i].TaskID != want {
			t.Errorf("got[%d] = %s, want %s", i, got[i].TaskID, want)
		}
	}
}

func TestGroupTasksByDate(t *testing.T) {
	tasks := []*model.Task{
		{TaskID: "t1", Title: "low untimed", DueDate: "2024-01-04", Priority: model.PriorityLow},
		{TaskID: "t2", Title: "late", DueDate: "2024-01-04", StartTime: "14:00", EndTime: "15:00"},
		{TaskID: "t3", Title: "high untimed", DueDate: "2024-01-04", Priority: model.PriorityHigh},
		{TaskID: "t4", Title: "early", DueDate: "2024-01-04", StartTime: "09:00", EndTime: "10:00"},
		{TaskID: "t5", Title: "other day", DueDate: "2024-01-05"},
		{TaskID: "t6", Title: "dateless"},
	}

	grouped := GroupTasksByDate(tasks)

	if len(grouped) != 2 {
		t.Fatalf("got %d days, want 2", len(grouped))
	}
	day := grouped["2024-01-04"]
	// Timed tasks first by start time, then untimed by priority high to low.
	for i, want := range []string{"t4", "t2", "t3", "t1"} {
		if day[i].TaskID != want {
			t.Errorf("day[%d] = %s, want %s", i, day[i].TaskID, want)
		}
	}
}

func TestIsOverdue(t *testing.T) {
	now := date("2024-01-10")
	tests := []struct {
		name string
		task model.Task
		want bool
	}{
		{"yesterday incomplete", model.Task{Title: "x", DueDate: "2024-01-09"}, true},
		{"due today", model.Task{Title: "x", DueDate: "2024-01-10"}, false},
		{"tomorrow", model.Task{Title: "x", DueDate: "2024-01-11"}, false},
		{"completed yesterday", model.Task{Title: "x", DueDate: "2024-01-09", Completed: true}, false},
		{"no due date", model.Task{Title: "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(&tt.task, now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}
