package model

import "time"

// ClassSession is one persisted occurrence of a subject's weekly slot on a
// concrete calendar date.
type ClassSession struct {
	SessionID string    `bson:"_id,omitempty" json:"id"`
	SubjectID string    `bson:"subject_id" json:"subject_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Date      string    `bson:"date" json:"date"`
	TimeSlot  TimeSlot  `bson:"time_slot" json:"time_slot"`
	Attended  bool      `bson:"attended" json:"attended"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
