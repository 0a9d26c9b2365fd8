package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"taskmaster/config"
	"taskmaster/middleware"
	"taskmaster/repository"
	"taskmaster/schedule"
)

// ReminderService periodically scans for tasks due soon or overdue and
// publishes the counts as gauges.
type ReminderService struct {
	repo *repository.TasksRepo
	cfg  config.ReminderConfig
	cron *cron.Cron
}

func NewReminderService(repo *repository.TasksRepo, cfg config.ReminderConfig) *ReminderService {
	return &ReminderService{
		repo: repo,
		cfg:  cfg,
		cron: cron.New(),
	}
}

func (svc *ReminderService) Start() error {
	spec := fmt.Sprintf("@every %s", svc.cfg.Interval)
	if _, err := svc.cron.AddFunc(spec, func() {
		if err := svc.Scan(context.Background()); err != nil {
			log.Printf("reminder scan failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("scheduling reminder scan: %w", err)
	}
	svc.cron.Start()
	log.Printf("Reminder scan scheduled every %s", svc.cfg.Interval)
	return nil
}

func (svc *ReminderService) Stop() {
	ctx := svc.cron.Stop()
	<-ctx.Done()
}

// Scan counts incomplete tasks due within the configured window and tasks
// already past due, then updates the gauges.
func (svc *ReminderService) Scan(ctx context.Context) error {
	today := time.Now().Format(schedule.DateLayout)
	horizon := time.Now().AddDate(0, 0, svc.cfg.WindowDays).Format(schedule.DateLayout)

	dueSoon, err := svc.repo.GetIncompleteDueBetween(ctx, today, horizon)
	if err != nil {
		return err
	}
	overdue, err := svc.repo.CountIncompleteOverdue(ctx, today)
	if err != nil {
		return err
	}

	middleware.TasksDueSoon.Set(float64(len(dueSoon)))
	middleware.TasksOverdue.Set(float64(overdue))
	return nil
}
