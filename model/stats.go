package model

import "time"

// WeekdayActivity is one bar of the dashboard's weekday chart.
type WeekdayActivity struct {
	Day            string `json:"day"`
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	CompletionRate int    `json:"completion_rate"`
}

type DashboardStats struct {
	TaskStats struct {
		Total          int `json:"total"`
		Completed      int `json:"completed"`
		Pending        int `json:"pending"`
		Overdue        int `json:"overdue"`
		CompletionRate int `json:"completion_rate"`
	} `json:"task_stats"`
	PriorityStats struct {
		High   int `json:"high"`
		Medium int `json:"medium"`
		Low    int `json:"low"`
	} `json:"priority_stats"`
	CategoryCounts map[string]int     `json:"category_counts"`
	WeekdayStats   [7]WeekdayActivity `json:"weekday_stats"`
	TimetableStats struct {
		Subjects       int `json:"subjects"`
		WeeklySessions int `json:"weekly_sessions"`
	} `json:"timetable_stats"`
	GeneratedAt time.Time `json:"generated_at"`
}
