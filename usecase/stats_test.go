package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/model"
)

func statsTask(title string, priority model.Priority, dueDate string, completed bool) *model.Task {
	return &model.Task{
		TaskID:    "task-" + title,
		UserID:    "user-1",
		Title:     title,
		Priority:  priority,
		DueDate:   dueDate,
		Completed: completed,
		Category:  "Others",
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	stats := ComputeDashboardStats(nil, nil, now)

	assert.Equal(t, 0, stats.TaskStats.Total)
	assert.Equal(t, 0, stats.TaskStats.CompletionRate)
	assert.Equal(t, 0, stats.TimetableStats.Subjects)
	assert.Equal(t, "Sunday", stats.WeekdayStats[0].Day)
	assert.Equal(t, "Saturday", stats.WeekdayStats[6].Day)
}

func TestComputeDashboardStatsCounts(t *testing.T) {
	// 2024-01-10 is a Wednesday.
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	tasks := []*model.Task{
		statsTask("done", model.PriorityHigh, "2024-01-08", true),
		statsTask("late", model.PriorityMedium, "2024-01-09", false),
		statsTask("today", model.PriorityLow, "2024-01-10", false),
		statsTask("undated", model.PriorityMedium, "", false),
	}
	tasks[1].Category = "Work"

	stats := ComputeDashboardStats(tasks, nil, now)

	assert.Equal(t, 4, stats.TaskStats.Total)
	assert.Equal(t, 1, stats.TaskStats.Completed)
	assert.Equal(t, 3, stats.TaskStats.Pending)
	// Only "late" is past due; "today" is due but not overdue.
	assert.Equal(t, 1, stats.TaskStats.Overdue)
	assert.Equal(t, 25, stats.TaskStats.CompletionRate)

	assert.Equal(t, 1, stats.PriorityStats.High)
	assert.Equal(t, 2, stats.PriorityStats.Medium)
	assert.Equal(t, 1, stats.PriorityStats.Low)

	assert.Equal(t, 3, stats.CategoryCounts["Others"])
	assert.Equal(t, 1, stats.CategoryCounts["Work"])
}

func TestComputeDashboardStatsWeekdays(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	// 2024-01-08 is a Monday, 2024-01-09 a Tuesday.
	tasks := []*model.Task{
		statsTask("a", model.PriorityMedium, "2024-01-08", true),
		statsTask("b", model.PriorityMedium, "2024-01-08", false),
		statsTask("c", model.PriorityMedium, "2024-01-09", true),
	}

	stats := ComputeDashboardStats(tasks, nil, now)

	monday := stats.WeekdayStats[int(time.Monday)]
	require.Equal(t, "Monday", monday.Day)
	assert.Equal(t, 2, monday.Total)
	assert.Equal(t, 1, monday.Completed)
	assert.Equal(t, 50, monday.CompletionRate)

	tuesday := stats.WeekdayStats[int(time.Tuesday)]
	assert.Equal(t, 1, tuesday.Total)
	assert.Equal(t, 100, tuesday.CompletionRate)

	assert.Equal(t, 0, stats.WeekdayStats[int(time.Friday)].Total)
}

func TestComputeDashboardStatsRounding(t *testing.T) {
	now := time.Now()
	tasks := []*model.Task{
		statsTask("a", model.PriorityMedium, "", true),
		statsTask("b", model.PriorityMedium, "", true),
		statsTask("c", model.PriorityMedium, "", false),
	}

	stats := ComputeDashboardStats(tasks, nil, now)
	// 2/3 rounds to 67, not truncates to 66.
	assert.Equal(t, 67, stats.TaskStats.CompletionRate)
}

func TestComputeDashboardStatsTimetable(t *testing.T) {
	subjects := []*model.Subject{
		{SubjectID: "s1", Name: "Algorithms", TimeSlots: []model.TimeSlot{
			{Day: 1, StartTime: "09:00", EndTime: "10:00"},
			{Day: 3, StartTime: "09:00", EndTime: "10:00"},
		}},
		{SubjectID: "s2", Name: "Databases", TimeSlots: []model.TimeSlot{
			{Day: 2, StartTime: "14:00", EndTime: "16:00"},
		}},
	}

	stats := ComputeDashboardStats(nil, subjects, time.Now())
	assert.Equal(t, 2, stats.TimetableStats.Subjects)
	assert.Equal(t, 3, stats.TimetableStats.WeeklySessions)
}
