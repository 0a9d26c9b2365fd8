package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Task is a single user work item, optionally scheduled. DueDate uses
// "YYYY-MM-DD" and StartTime/EndTime use "HH:mm"; a task only takes part in
// conflict detection when all three are set.
type Task struct {
	TaskID      string     `bson:"_id,omitempty" json:"id"`
	UserID      string     `bson:"user_id" json:"user_id"`
	Title       string     `bson:"title" json:"title" binding:"required"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Priority    Priority   `bson:"priority,omitempty" json:"priority,omitempty"`
	Completed   bool       `bson:"completed" json:"completed"`
	Category    string     `bson:"category,omitempty" json:"category,omitempty"`
	DueDate     string     `bson:"due_date,omitempty" json:"due_date,omitempty"`
	StartTime   string     `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime     string     `bson:"end_time,omitempty" json:"end_time,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// HasTimeWindow reports whether the task carries a full due date plus
// start/end time pair. A one-sided pair counts as no window.
func (t *Task) HasTimeWindow() bool {
	return t.DueDate != "" && t.StartTime != "" && t.EndTime != ""
}
