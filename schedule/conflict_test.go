package schedule

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/model"
)

func timedTask(id, title, dueDate, start, end string) *model.Task {
	return &model.Task{
		TaskID:    id,
		Title:     title,
		DueDate:   dueDate,
		StartTime: start,
		EndTime:   end,
	}
}

func weeklySubject(id, name, from, to string, slots ...model.TimeSlot) *model.Subject {
	return &model.Subject{
		SubjectID: id,
		Name:      name,
		FromDate:  from,
		ToDate:    to,
		TimeSlots: slots,
	}
}

// conflictKey identifies a conflict regardless of pair orientation.
func conflictKey(c Conflict) string {
	ids := []string{c.First.ID, c.Second.ID}
	sort.Strings(ids)
	return string(c.Kind) + "|" + strings.Join(ids, "|")
}

func conflictSet(conflicts []Conflict) map[string]bool {
	set := make(map[string]bool, len(conflicts))
	for _, c := range conflicts {
		set[conflictKey(c)] = true
	}
	return set
}

func TestTaskVsSubjectRoundTrip(t *testing.T) {
	// 2024-01-01 is a Monday.
	task := timedTask("t1", "Review notes", "2024-01-01", "09:00", "10:00")
	subject := weeklySubject("s1", "Algorithms", "2023-12-01", "2024-03-31",
		slot(1, "09:30", "10:30"))

	conflicts := FindAllConflicts([]*model.Task{task}, []*model.Subject{subject})

	require.Len(t, conflicts, 1)
	assert.Equal(t, TaskVsSubject, conflicts[0].Kind)
	assert.Equal(t, "t1", conflicts[0].First.ID)
	assert.Equal(t, "s1", conflicts[0].Second.ID)
	assert.Contains(t, conflicts[0].Description, "Algorithms")
	assert.Contains(t, conflicts[0].Description, "Monday")
}

func TestTouchingTasksDoNotConflict(t *testing.T) {
	tasks := []*model.Task{
		timedTask("t1", "First", "2024-01-05", "09:00", "10:00"),
		timedTask("t2", "Second", "2024-01-05", "10:00", "11:00"),
	}

	conflicts := FindAllConflicts(tasks, nil)
	assert.Empty(t, conflicts)
}

func TestTasksOnDifferentDatesDoNotConflict(t *testing.T) {
	tasks := []*model.Task{
		timedTask("t1", "First", "2024-01-05", "09:00", "10:00"),
		timedTask("t2", "Second", "2024-01-06", "09:00", "10:00"),
	}

	conflicts := FindAllConflicts(tasks, nil)
	assert.Empty(t, conflicts)
}

func TestIncompleteTasksNeverConflict(t *testing.T) {
	tasks := []*model.Task{
		{TaskID: "t1", Title: "No window at all"},
		{TaskID: "t2", Title: "Date only", DueDate: "2024-01-05"},
		{TaskID: "t3", Title: "One-sided time", DueDate: "2024-01-05", StartTime: "09:00"},
		timedTask("t4", "Complete", "2024-01-05", "09:00", "10:00"),
	}
	subjects := []*model.Subject{
		weeklySubject("s1", "Everything", "2024-01-01", "2024-06-30",
			slot(0, "00:00", "23:59"), slot(1, "00:00", "23:59"), slot(2, "00:00", "23:59"),
			slot(3, "00:00", "23:59"), slot(4, "00:00", "23:59"), slot(5, "00:00", "23:59"),
			slot(6, "00:00", "23:59")),
	}

	conflicts := FindAllConflicts(tasks, subjects)

	// Only the complete task can conflict, and only with the subject.
	require.Len(t, conflicts, 1)
	assert.Equal(t, "t4", conflicts[0].First.ID)
}

func TestExpiredSubjectStillConflicts(t *testing.T) {
	// The subject's semester ended well before the task's due date; the
	// weekday/time check intentionally ignores the validity range.
	task := timedTask("t1", "Essay", "2024-01-01", "09:00", "10:00")
	expired := weeklySubject("s1", "Last Semester", "2023-09-01", "2023-12-20",
		slot(1, "09:00", "11:00"))

	conflicts := FindAllConflicts([]*model.Task{task}, []*model.Subject{expired})

	require.Len(t, conflicts, 1)
	assert.Equal(t, TaskVsSubject, conflicts[0].Kind)
}

func TestSubjectPairReportedOnce(t *testing.T) {
	// Two slots collide in each direction; the pair is still one conflict.
	a := weeklySubject("s1", "Math", "2024-01-01", "2024-06-30",
		slot(1, "09:00", "10:00"), slot(3, "09:00", "10:00"))
	b := weeklySubject("s2", "Physics", "2024-01-01", "2024-06-30",
		slot(1, "09:30", "10:30"), slot(3, "09:30", "10:30"))

	conflicts := FindAllConflicts(nil, []*model.Subject{a, b})

	require.Len(t, conflicts, 1)
	assert.Equal(t, SubjectVsSubject, conflicts[0].Kind)
}

func TestSubjectsInDifferentSemestersStillConflict(t *testing.T) {
	spring := weeklySubject("s1", "Spring", "2024-01-01", "2024-05-31", slot(2, "10:00", "12:00"))
	fall := weeklySubject("s2", "Fall", "2024-09-01", "2024-12-20", slot(2, "11:00", "13:00"))

	conflicts := FindAllConflicts(nil, []*model.Subject{spring, fall})
	require.Len(t, conflicts, 1)
	assert.Equal(t, SubjectVsSubject, conflicts[0].Kind)
}

func TestFindAllConflictsOrderIndependent(t *testing.T) {
	tasks := []*model.Task{
		timedTask("t1", "A", "2024-01-01", "09:00", "10:00"),
		timedTask("t2", "B", "2024-01-01", "09:30", "10:30"),
		timedTask("t3", "C", "2024-01-01", "10:00", "11:00"),
		timedTask("t4", "D", "2024-01-02", "09:00", "10:00"),
	}
	subjects := []*model.Subject{
		weeklySubject("s1", "Math", "2024-01-01", "2024-06-30", slot(1, "09:00", "10:00")),
		weeklySubject("s2", "Physics", "2024-01-01", "2024-06-30", slot(1, "09:30", "11:00")),
	}

	want := conflictSet(FindAllConflicts(tasks, subjects))
	require.NotEmpty(t, want)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffledTasks := append([]*model.Task(nil), tasks...)
		shuffledSubjects := append([]*model.Subject(nil), subjects...)
		rng.Shuffle(len(shuffledTasks), func(a, b int) {
			shuffledTasks[a], shuffledTasks[b] = shuffledTasks[b], shuffledTasks[a]
		})
		rng.Shuffle(len(shuffledSubjects), func(a, b int) {
			shuffledSubjects[a], shuffledSubjects[b] = shuffledSubjects[b], shuffledSubjects[a]
		})

		got := conflictSet(FindAllConflicts(shuffledTasks, shuffledSubjects))
		assert.Equal(t, want, got)
	}
}

func TestCheckTaskConflictsMatchesFindAll(t *testing.T) {
	candidate := timedTask("t9", "Candidate", "2024-01-01", "09:15", "10:15")
	others := []*model.Task{
		timedTask("t1", "A", "2024-01-01", "09:00", "10:00"),
		timedTask("t2", "B", "2024-01-01", "11:00", "12:00"),
	}
	subjects := []*model.Subject{
		weeklySubject("s1", "Math", "2024-01-01", "2024-06-30", slot(1, "10:00", "11:00")),
	}

	all := FindAllConflicts(append(append([]*model.Task(nil), others...), candidate), subjects)
	involving := make([]Conflict, 0)
	for _, c := range all {
		if c.First.ID == candidate.TaskID || c.Second.ID == candidate.TaskID {
			involving = append(involving, c)
		}
	}

	scoped := CheckTaskConflicts(candidate, append(append([]*model.Task(nil), others...), candidate), subjects, candidate.TaskID)

	assert.Equal(t, conflictSet(involving), conflictSet(scoped))
}

func TestCheckTaskConflictsExcludesPriorVersion(t *testing.T) {
	stored := timedTask("t1", "Stored version", "2024-01-01", "09:00", "10:00")
	// Edited copy of the same task, still overlapping its stored self.
	edited := timedTask("t1", "Edited version", "2024-01-01", "09:30", "10:30")

	withExclude := CheckTaskConflicts(edited, []*model.Task{stored}, nil, "t1")
	assert.Empty(t, withExclude)

	withoutExclude := CheckTaskConflicts(edited, []*model.Task{stored}, nil, "")
	assert.Len(t, withoutExclude, 1)
}

func TestCheckTaskConflictsWithoutWindow(t *testing.T) {
	candidate := &model.Task{TaskID: "t1", Title: "Unscheduled"}
	others := []*model.Task{timedTask("t2", "Busy", "2024-01-01", "00:00", "23:59")}

	assert.Empty(t, CheckTaskConflicts(candidate, others, nil, ""))
}
