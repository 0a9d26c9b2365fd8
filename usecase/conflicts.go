package usecase

import (
	"context"

	"taskmaster/middleware"
	"taskmaster/model"
	"taskmaster/repository"
	"taskmaster/schedule"
)

// ConflictsService feeds snapshots of a user's tasks and subjects into the
// pure conflict detector. The detector itself never touches storage.
type ConflictsService struct {
	tasksRepo    *repository.TasksRepo
	subjectsRepo *repository.SubjectsRepo
}

func NewConflictsService(tasksRepo *repository.TasksRepo, subjectsRepo *repository.SubjectsRepo) *ConflictsService {
	return &ConflictsService{tasksRepo: tasksRepo, subjectsRepo: subjectsRepo}
}

// FindAll reports every pairwise conflict among the user's tasks and subjects.
func (svc *ConflictsService) FindAll(ctx context.Context, userID string) ([]schedule.Conflict, error) {
	tasks, subjects, err := svc.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	conflicts := schedule.FindAllConflicts(tasks, subjects)
	trackConflicts(conflicts)
	return conflicts, nil
}

// CheckTask reports conflicts between one candidate task and the user's
// stored tasks and subjects. excludeID drops the stored version of the task
// being edited; pass "" when creating.
func (svc *ConflictsService) CheckTask(ctx context.Context, userID string, candidate *model.Task, excludeID string) ([]schedule.Conflict, error) {
	tasks, subjects, err := svc.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	conflicts := schedule.CheckTaskConflicts(candidate, tasks, subjects, excludeID)
	trackConflicts(conflicts)
	return conflicts, nil
}

func (svc *ConflictsService) snapshot(ctx context.Context, userID string) ([]*model.Task, []*model.Subject, error) {
	tasks, err := svc.tasksRepo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	subjects, err := svc.subjectsRepo.GetUserSubjects(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return tasks, subjects, nil
}

func trackConflicts(conflicts []schedule.Conflict) {
	counts := make(map[schedule.ConflictKind]int)
	for _, c := range conflicts {
		counts[c.Kind]++
	}
	for kind, n := range counts {
		middleware.TrackConflicts(string(kind), n)
	}
}
