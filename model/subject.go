package model

import "time"

type SubjectType string

const (
	SubjectLecture  SubjectType = "lecture"
	SubjectLab      SubjectType = "lab"
	SubjectTutorial SubjectType = "tutorial"
	SubjectSeminar  SubjectType = "seminar"
	SubjectOther    SubjectType = "other"
)

// Subject is a weekly-recurring timetable entry (e.g. a class) with one or
// more time slots, valid over the inclusive [FromDate, ToDate] range
// ("YYYY-MM-DD").
type Subject struct {
	SubjectID  string      `bson:"_id,omitempty" json:"id"`
	UserID     string      `bson:"user_id" json:"user_id"`
	Name       string      `bson:"name" json:"name" binding:"required"`
	Code       string      `bson:"code,omitempty" json:"code,omitempty"`
	Instructor string      `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Location   string      `bson:"location,omitempty" json:"location,omitempty"`
	Color      string      `bson:"color,omitempty" json:"color,omitempty"`
	Type       SubjectType `bson:"type,omitempty" json:"type,omitempty"`
	TimeSlots  []TimeSlot  `bson:"time_slots" json:"time_slots"`
	Semester   string      `bson:"semester,omitempty" json:"semester,omitempty"`
	FromDate   string      `bson:"from_date" json:"from_date"`
	ToDate     string      `bson:"to_date" json:"to_date"`
	CreatedAt  time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `bson:"updated_at" json:"updated_at"`
}
