package model

// Occurrence is the transient output of recurrence expansion: one concrete
// calendar date for one of the subject's time slots, not yet persisted.
type Occurrence struct {
	SubjectID string   `json:"subject_id"`
	Date      string   `json:"date"`
	TimeSlot  TimeSlot `json:"time_slot"`
}
