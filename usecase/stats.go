package usecase

import (
	"context"
	"math"
	"time"

	"taskmaster/model"
	"taskmaster/repository"
	"taskmaster/schedule"
)

type StatsService struct {
	tasks    *repository.TasksRepo
	subjects *repository.SubjectsRepo
	cache    *StatsCache
}

func NewStatsService(tasks *repository.TasksRepo, subjects *repository.SubjectsRepo, cache *StatsCache) *StatsService {
	return &StatsService{tasks: tasks, subjects: subjects, cache: cache}
}

// Dashboard returns the user's analytics, served from the Redis cache when a
// fresh entry exists.
func (svc *StatsService) Dashboard(ctx context.Context, userID string) (*model.DashboardStats, error) {
	if svc.cache != nil {
		if cached := svc.cache.Get(ctx, userID); cached != nil {
			return cached, nil
		}
	}

	tasks, err := svc.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	subjects, err := svc.subjects.GetUserSubjects(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := ComputeDashboardStats(tasks, subjects, time.Now())

	if svc.cache != nil {
		svc.cache.Set(ctx, userID, stats)
	}
	return stats, nil
}

// ComputeDashboardStats derives the dashboard numbers from snapshots. Pure;
// "now" only feeds the overdue check.
func ComputeDashboardStats(tasks []*model.Task, subjects []*model.Subject, now time.Time) *model.DashboardStats {
	stats := &model.DashboardStats{
		CategoryCounts: make(map[string]int),
		GeneratedAt:    now,
	}

	for i := range stats.WeekdayStats {
		stats.WeekdayStats[i].Day = time.Weekday(i).String()
	}

	for _, t := range tasks {
		stats.TaskStats.Total++
		if t.Completed {
			stats.TaskStats.Completed++
		} else {
			stats.TaskStats.Pending++
			if schedule.IsOverdue(t, now) {
				stats.TaskStats.Overdue++
			}
		}

		switch t.Priority {
		case model.PriorityHigh:
			stats.PriorityStats.High++
		case model.PriorityLow:
			stats.PriorityStats.Low++
		default:
			stats.PriorityStats.Medium++
		}

		if t.Category != "" {
			stats.CategoryCounts[t.Category]++
		}

		if t.DueDate != "" {
			if due, err := time.Parse(schedule.DateLayout, t.DueDate); err == nil {
				day := &stats.WeekdayStats[int(due.Weekday())]
				day.Total++
				if t.Completed {
					day.Completed++
				}
			}
		}
	}

	stats.TaskStats.CompletionRate = ratePercent(stats.TaskStats.Completed, stats.TaskStats.Total)
	for i := range stats.WeekdayStats {
		day := &stats.WeekdayStats[i]
		day.CompletionRate = ratePercent(day.Completed, day.Total)
	}

	stats.TimetableStats.Subjects = len(subjects)
	for _, s := range subjects {
		stats.TimetableStats.WeeklySessions += len(s.TimeSlots)
	}

	return stats
}

func ratePercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
