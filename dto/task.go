package dto

import (
	"time"

	"taskmaster/model"
	"taskmaster/schedule"
)

type CreateTaskRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Priority    model.Priority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Category    string         `json:"category"`
	DueDate     string         `json:"due_date" binding:"omitempty,dateonly"`
	StartTime   string         `json:"start_time" binding:"omitempty,clocktime"`
	EndTime     string         `json:"end_time" binding:"omitempty,clocktime"`
}

type UpdateTaskRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Priority    model.Priority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Category    string         `json:"category"`
	Completed   bool           `json:"completed"`
	DueDate     string         `json:"due_date" binding:"omitempty,dateonly"`
	StartTime   string         `json:"start_time" binding:"omitempty,clocktime"`
	EndTime     string         `json:"end_time" binding:"omitempty,clocktime"`
}

type TaskResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Priority    model.Priority `json:"priority"`
	Category    string         `json:"category,omitempty"`
	Completed   bool           `json:"completed"`
	DueDate     string         `json:"due_date,omitempty"`
	StartTime   string         `json:"start_time,omitempty"`
	EndTime     string         `json:"end_time,omitempty"`
	Overdue     bool           `json:"overdue"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// TaskWriteResponse carries the written task plus any scheduling conflicts it
// introduces. Conflicts are advisory; the write has already happened.
type TaskWriteResponse struct {
	Task      TaskResponse        `json:"task"`
	Conflicts []schedule.Conflict `json:"conflicts"`
}

func (r *CreateTaskRequest) ToModel(userID string) *model.Task {
	return &model.Task{
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Category:    r.Category,
		DueDate:     r.DueDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

func (r *UpdateTaskRequest) ToModel(userID string) *model.Task {
	return &model.Task{
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Category:    r.Category,
		Completed:   r.Completed,
		DueDate:     r.DueDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

func ToTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Category:    task.Category,
		Completed:   task.Completed,
		DueDate:     task.DueDate,
		StartTime:   task.StartTime,
		EndTime:     task.EndTime,
		Overdue:     schedule.IsOverdue(task, time.Now()),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		CompletedAt: task.CompletedAt,
	}
}

func ToTaskResponses(tasks []*model.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
