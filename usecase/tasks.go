package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"taskmaster/middleware"
	"taskmaster/model"
	"taskmaster/repository"
	"taskmaster/schedule"
)

type TasksService struct {
	repo      *repository.TasksRepo
	conflicts *ConflictsService
	cache     *StatsCache // optional dashboard cache, invalidated on writes
}

func NewTasksService(repo *repository.TasksRepo, conflicts *ConflictsService, cache *StatsCache) *TasksService {
	return &TasksService{repo: repo, conflicts: conflicts, cache: cache}
}

// GetUserTasks returns the user's tasks: incomplete before complete, overdue
// first among incomplete, then priority, due date, creation time.
func (svc *TasksService) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	tasks, err := svc.repo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		if a.Completed != b.Completed {
			return !a.Completed
		}

		if !a.Completed {
			aOverdue := schedule.IsOverdue(a, now)
			bOverdue := schedule.IsOverdue(b, now)
			if aOverdue != bOverdue {
				return aOverdue
			}
		}

		if a.Priority != b.Priority {
			return priorityWeight(a.Priority) > priorityWeight(b.Priority)
		}

		if a.DueDate != b.DueDate {
			// Dated tasks before undated ones; ISO dates sort as strings.
			if a.DueDate == "" || b.DueDate == "" {
				return a.DueDate != ""
			}
			return a.DueDate < b.DueDate
		}

		return a.CreatedAt.Before(b.CreatedAt)
	})

	return tasks, nil
}

// CreateTask validates and stores a task. Conflicts with existing tasks and
// subjects are returned alongside the created task as advisory data; they do
// not block the write.
func (svc *TasksService) CreateTask(ctx context.Context, task *model.Task) ([]schedule.Conflict, error) {
	if err := schedule.ValidateTask(task); err != nil {
		return nil, err
	}

	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if task.Category == "" {
		task.Category = "Others"
	}
	task.TaskID = uuid.New().String()
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	task.Completed = false
	task.CompletedAt = nil

	conflicts, err := svc.conflicts.CheckTask(ctx, task.UserID, task, "")
	if err != nil {
		return nil, err
	}

	if err := svc.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	middleware.TrackTaskOperation("create")
	svc.invalidateStats(ctx, task.UserID)
	return conflicts, nil
}

// UpdateTask validates and stores new field values for an existing task,
// again reporting conflicts as data. The stored version of the task is
// excluded from the check so a task never conflicts with itself.
func (svc *TasksService) UpdateTask(ctx context.Context, userID, taskID string, updates *model.Task) ([]schedule.Conflict, error) {
	updates.TaskID = taskID
	updates.UserID = userID
	if err := schedule.ValidateTask(updates); err != nil {
		return nil, err
	}
	if updates.Priority == "" {
		updates.Priority = model.PriorityMedium
	}

	conflicts, err := svc.conflicts.CheckTask(ctx, userID, updates, taskID)
	if err != nil {
		return nil, err
	}

	if err := svc.repo.UpdateTask(ctx, taskID, userID, updates); err != nil {
		return nil, err
	}

	middleware.TrackTaskOperation("update")
	svc.invalidateStats(ctx, userID)
	return conflicts, nil
}

func (svc *TasksService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if err := svc.repo.DeleteTask(ctx, taskID, userID); err != nil {
		return err
	}
	middleware.TrackTaskOperation("delete")
	svc.invalidateStats(ctx, userID)
	return nil
}

func (svc *TasksService) ToggleTask(ctx context.Context, userID, taskID string) (*model.Task, error) {
	task, err := svc.repo.ToggleTaskComplete(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	middleware.TrackTaskOperation("toggle")
	svc.invalidateStats(ctx, userID)
	return task, nil
}

func (svc *TasksService) invalidateStats(ctx context.Context, userID string) {
	if svc.cache != nil {
		svc.cache.Invalidate(ctx, userID)
	}
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
