package dto

import (
	"time"

	"taskmaster/model"
)

type TimeSlotRequest struct {
	Day       int    `json:"day" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required,clocktime"`
	EndTime   string `json:"end_time" binding:"required,clocktime"`
}

type SubjectRequest struct {
	Name       string            `json:"name" binding:"required"`
	Code       string            `json:"code"`
	Instructor string            `json:"instructor"`
	Location   string            `json:"location"`
	Color      string            `json:"color"`
	Type       model.SubjectType `json:"type" binding:"omitempty,oneof=lecture lab tutorial seminar other"`
	TimeSlots  []TimeSlotRequest `json:"time_slots" binding:"dive"`
	Semester   string            `json:"semester"`
	FromDate   string            `json:"from_date" binding:"required,dateonly"`
	ToDate     string            `json:"to_date" binding:"required,dateonly"`
}

type SubjectResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Code       string            `json:"code,omitempty"`
	Instructor string            `json:"instructor,omitempty"`
	Location   string            `json:"location,omitempty"`
	Color      string            `json:"color,omitempty"`
	Type       model.SubjectType `json:"type"`
	TimeSlots  []model.TimeSlot  `json:"time_slots"`
	Semester   string            `json:"semester,omitempty"`
	FromDate   string            `json:"from_date"`
	ToDate     string            `json:"to_date"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// SubjectWriteResponse reports how many class sessions were materialized for
// the subject's schedule along with the stored subject.
type SubjectWriteResponse struct {
	Subject  SubjectResponse `json:"subject"`
	Sessions int             `json:"sessions_generated"`
}

type SessionResponse struct {
	ID        string         `json:"id"`
	SubjectID string         `json:"subject_id"`
	Date      string         `json:"date"`
	TimeSlot  model.TimeSlot `json:"time_slot"`
	Attended  bool           `json:"attended"`
	Notes     string         `json:"notes,omitempty"`
}

func (r *SubjectRequest) ToModel(userID string) *model.Subject {
	slots := make([]model.TimeSlot, len(r.TimeSlots))
	for i, s := range r.TimeSlots {
		slots[i] = model.TimeSlot{Day: s.Day, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return &model.Subject{
		UserID:     userID,
		Name:       r.Name,
		Code:       r.Code,
		Instructor: r.Instructor,
		Location:   r.Location,
		Color:      r.Color,
		Type:       r.Type,
		TimeSlots:  slots,
		Semester:   r.Semester,
		FromDate:   r.FromDate,
		ToDate:     r.ToDate,
	}
}

func ToSubjectResponse(s *model.Subject) SubjectResponse {
	return SubjectResponse{
		ID:         s.SubjectID,
		Name:       s.Name,
		Code:       s.Code,
		Instructor: s.Instructor,
		Location:   s.Location,
		Color:      s.Color,
		Type:       s.Type,
		TimeSlots:  s.TimeSlots,
		Semester:   s.Semester,
		FromDate:   s.FromDate,
		ToDate:     s.ToDate,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func ToSubjectResponses(subjects []*model.Subject) []SubjectResponse {
	responses := make([]SubjectResponse, len(subjects))
	for i, s := range subjects {
		responses[i] = ToSubjectResponse(s)
	}
	return responses
}

func ToSessionResponse(s *model.ClassSession) SessionResponse {
	return SessionResponse{
		ID:        s.SessionID,
		SubjectID: s.SubjectID,
		Date:      s.Date,
		TimeSlot:  s.TimeSlot,
		Attended:  s.Attended,
		Notes:     s.Notes,
	}
}

func ToSessionResponses(sessions []*model.ClassSession) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = ToSessionResponse(s)
	}
	return responses
}
