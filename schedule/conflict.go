package schedule

import (
	"fmt"
	"time"

	"taskmaster/model"
)

type ConflictKind string

const (
	TaskVsTask       ConflictKind = "task_vs_task"
	TaskVsSubject    ConflictKind = "task_vs_subject"
	SubjectVsSubject ConflictKind = "subject_vs_subject"
)

// Ref points at one of the two entities in a conflict. Conflicts are
// transient query results; they reference entities, never own them.
type Ref struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Conflict struct {
	Kind        ConflictKind `json:"kind"`
	First       Ref          `json:"first"`
	Second      Ref          `json:"second"`
	Description string       `json:"description"`
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func dayName(day int) string {
	if day < 0 || day > 6 {
		return "unknown"
	}
	return dayNames[day]
}

// FindAllConflicts runs the three pairwise passes over the given snapshots:
// task vs task, task vs subject, subject vs subject. Each unordered pair is
// reported at most once. Tasks without a due date or with an incomplete
// start/end pair are skipped silently; conflicts are data, not errors.
//
// Subject checks deliberately ignore the subject's [FromDate, ToDate]
// validity range: a subject whose semester already ended still conflicts by
// weekday and time alone. Callers relying on validity windows must filter
// their snapshots first.
func FindAllConflicts(tasks []*model.Task, subjects []*model.Subject) []Conflict {
	conflicts := make([]Conflict, 0)

	for i := 0; i < len(tasks); i++ {
		for j := i + 1; j < len(tasks); j++ {
			if tasksConflict(tasks[i], tasks[j]) {
				conflicts = append(conflicts, taskTaskConflict(tasks[i], tasks[j]))
			}
		}
	}

	for _, task := range tasks {
		for _, subject := range subjects {
			if slot, ok := taskSubjectConflict(task, subject); ok {
				conflicts = append(conflicts, taskSubjectConflictEntry(task, subject, slot))
			}
		}
	}

	for i := 0; i < len(subjects); i++ {
		for j := i + 1; j < len(subjects); j++ {
			if slot, ok := subjectsConflict(subjects[i], subjects[j]); ok {
				conflicts = append(conflicts, subjectSubjectConflict(subjects[i], subjects[j], slot))
			}
		}
	}

	return conflicts
}

// CheckTaskConflicts checks one candidate task against existing tasks and
// subjects, for live validation while the user edits a form. excludeID
// removes the candidate's own stored version so a task never conflicts with
// itself; pass "" when creating.
func CheckTaskConflicts(candidate *model.Task, tasks []*model.Task, subjects []*model.Subject, excludeID string) []Conflict {
	conflicts := make([]Conflict, 0)
	if !candidate.HasTimeWindow() {
		return conflicts
	}

	for _, existing := range tasks {
		if excludeID != "" && existing.TaskID == excludeID {
			continue
		}
		if tasksConflict(candidate, existing) {
			conflicts = append(conflicts, taskTaskConflict(candidate, existing))
		}
	}

	for _, subject := range subjects {
		if slot, ok := taskSubjectConflict(candidate, subject); ok {
			conflicts = append(conflicts, taskSubjectConflictEntry(candidate, subject, slot))
		}
	}

	return conflicts
}

func tasksConflict(a, b *model.Task) bool {
	if !a.HasTimeWindow() || !b.HasTimeWindow() {
		return false
	}
	if a.DueDate != b.DueDate {
		return false
	}
	return clockRangesOverlap(a.StartTime, a.EndTime, b.StartTime, b.EndTime)
}

// taskSubjectConflict returns the first subject slot the task's time window
// collides with. The weekday is derived from the task's due date; the
// subject's validity range is not consulted.
func taskSubjectConflict(task *model.Task, subject *model.Subject) (model.TimeSlot, bool) {
	if !task.HasTimeWindow() {
		return model.TimeSlot{}, false
	}
	due, err := time.Parse(DateLayout, task.DueDate)
	if err != nil {
		return model.TimeSlot{}, false
	}
	day := int(due.Weekday())
	for _, slot := range subject.TimeSlots {
		if slot.Day != day {
			continue
		}
		if clockRangesOverlap(task.StartTime, task.EndTime, slot.StartTime, slot.EndTime) {
			return slot, true
		}
	}
	return model.TimeSlot{}, false
}

func subjectsConflict(a, b *model.Subject) (model.TimeSlot, bool) {
	for _, slotA := range a.TimeSlots {
		for _, slotB := range b.TimeSlots {
			if Overlaps(slotA, slotB) {
				return slotA, true
			}
		}
	}
	return model.TimeSlot{}, false
}

func taskTaskConflict(a, b *model.Task) Conflict {
	return Conflict{
		Kind:   TaskVsTask,
		First:  Ref{ID: a.TaskID, Label: a.Title},
		Second: Ref{ID: b.TaskID, Label: b.Title},
		Description: fmt.Sprintf("Task %q conflicts with task %q on %s (%s-%s)",
			a.Title, b.Title, a.DueDate, a.StartTime, a.EndTime),
	}
}

func taskSubjectConflictEntry(task *model.Task, subject *model.Subject, slot model.TimeSlot) Conflict {
	return Conflict{
		Kind:   TaskVsSubject,
		First:  Ref{ID: task.TaskID, Label: task.Title},
		Second: Ref{ID: subject.SubjectID, Label: subject.Name},
		Description: fmt.Sprintf("Task %q conflicts with subject %q on %s (%s-%s)",
			task.Title, subject.Name, dayName(slot.Day), task.StartTime, task.EndTime),
	}
}

func subjectSubjectConflict(a, b *model.Subject, slot model.TimeSlot) Conflict {
	return Conflict{
		Kind:   SubjectVsSubject,
		First:  Ref{ID: a.SubjectID, Label: a.Name},
		Second: Ref{ID: b.SubjectID, Label: b.Name},
		Description: fmt.Sprintf("Subject %q conflicts with subject %q on %s (%s-%s)",
			a.Name, b.Name, dayName(slot.Day), slot.StartTime, slot.EndTime),
	}
}
