package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskmaster/middleware"
	"taskmaster/model"
	"taskmaster/repository"
	"taskmaster/schedule"
)

// TimetableService owns subjects and the class sessions materialized from
// their weekly patterns. Creating or rescheduling a subject expands its
// recurrence over [FromDate, ToDate] and bulk-persists one session per
// occurrence.
type TimetableService struct {
	subjects *repository.SubjectsRepo
	sessions *repository.SessionsRepo
	cache    *StatsCache
}

func NewTimetableService(subjects *repository.SubjectsRepo, sessions *repository.SessionsRepo, cache *StatsCache) *TimetableService {
	return &TimetableService{subjects: subjects, sessions: sessions, cache: cache}
}

func (svc *TimetableService) GetUserSubjects(ctx context.Context, userID string) ([]*model.Subject, error) {
	return svc.subjects.GetUserSubjects(ctx, userID)
}

// GetUserSessionsInRange returns all of the user's class sessions with dates
// inside [from, to], both formatted as YYYY-MM-DD.
func (svc *TimetableService) GetUserSessionsInRange(ctx context.Context, userID, from, to string) ([]*model.ClassSession, error) {
	return svc.sessions.GetUserSessionsInRange(ctx, userID, from, to)
}

func (svc *TimetableService) GetSubjectSessions(ctx context.Context, subjectID, userID string) ([]*model.ClassSession, error) {
	if _, err := svc.subjects.GetSubject(ctx, subjectID, userID); err != nil {
		return nil, err
	}
	return svc.sessions.GetSubjectSessions(ctx, subjectID, userID)
}

// CreateSubject validates, stores and expands a new subject, returning the
// number of class sessions generated.
func (svc *TimetableService) CreateSubject(ctx context.Context, subject *model.Subject) (int, error) {
	if err := schedule.ValidateSubject(subject); err != nil {
		return 0, err
	}
	if subject.Type == "" {
		subject.Type = model.SubjectOther
	}
	subject.SubjectID = uuid.New().String()
	now := time.Now()
	subject.CreatedAt = now
	subject.UpdatedAt = now

	if err := svc.subjects.CreateSubject(ctx, subject); err != nil {
		return 0, err
	}

	generated, err := svc.materializeSessions(ctx, subject)
	if err != nil {
		return 0, err
	}

	middleware.TrackSubjectOperation("create")
	svc.invalidateStats(ctx, subject.UserID)
	return generated, nil
}

// UpdateSubject stores new field values and rebuilds the subject's sessions
// from scratch, since any slot or date-range change can move every
// occurrence.
func (svc *TimetableService) UpdateSubject(ctx context.Context, userID, subjectID string, updates *model.Subject) (int, error) {
	updates.SubjectID = subjectID
	updates.UserID = userID
	if err := schedule.ValidateSubject(updates); err != nil {
		return 0, err
	}

	if err := svc.subjects.UpdateSubject(ctx, subjectID, userID, updates); err != nil {
		return 0, err
	}

	generated, err := svc.RegenerateSessions(ctx, userID, subjectID)
	if err != nil {
		return 0, err
	}

	middleware.TrackSubjectOperation("update")
	return generated, nil
}

// RegenerateSessions drops and re-expands a subject's sessions. Attendance
// records on the old sessions are lost; callers surface that to the user.
func (svc *TimetableService) RegenerateSessions(ctx context.Context, userID, subjectID string) (int, error) {
	subject, err := svc.subjects.GetSubject(ctx, subjectID, userID)
	if err != nil {
		return 0, err
	}

	if _, err := svc.sessions.DeleteSubjectSessions(ctx, subjectID, userID); err != nil {
		return 0, err
	}

	generated, err := svc.materializeSessions(ctx, subject)
	if err != nil {
		return 0, err
	}

	middleware.TrackSubjectOperation("regenerate")
	svc.invalidateStats(ctx, userID)
	return generated, nil
}

// DeleteSubject removes a subject and cascades to its sessions.
func (svc *TimetableService) DeleteSubject(ctx context.Context, userID, subjectID string) error {
	if err := svc.subjects.DeleteSubject(ctx, subjectID, userID); err != nil {
		return err
	}
	if _, err := svc.sessions.DeleteSubjectSessions(ctx, subjectID, userID); err != nil {
		return err
	}
	middleware.TrackSubjectOperation("delete")
	svc.invalidateStats(ctx, userID)
	return nil
}

func (svc *TimetableService) materializeSessions(ctx context.Context, subject *model.Subject) (int, error) {
	occurrences, err := schedule.Expand(subject)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	sessions := make([]*model.ClassSession, len(occurrences))
	for i, occ := range occurrences {
		sessions[i] = &model.ClassSession{
			SessionID: uuid.New().String(),
			SubjectID: occ.SubjectID,
			UserID:    subject.UserID,
			Date:      occ.Date,
			TimeSlot:  occ.TimeSlot,
			CreatedAt: now,
		}
	}

	if err := svc.sessions.CreateSessions(ctx, sessions); err != nil {
		return 0, err
	}

	middleware.SessionsGenerated.Add(float64(len(sessions)))
	return len(sessions), nil
}

func (svc *TimetableService) invalidateStats(ctx context.Context, userID string) {
	if svc.cache != nil {
		svc.cache.Invalidate(ctx, userID)
	}
}
