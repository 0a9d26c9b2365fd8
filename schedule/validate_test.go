package schedule

import (
	"errors"
	"testing"

	"taskmaster/model"
)

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name    string
		task    model.Task
		wantErr bool
	}{
		{"title only", model.Task{Title: "Read"}, false},
		{"full window", model.Task{Title: "Read", DueDate: "2024-01-01", StartTime: "09:00", EndTime: "10:00"}, false},
		{"date without times", model.Task{Title: "Read", DueDate: "2024-01-01"}, false},
		{"empty title", model.Task{Title: ""}, true},
		{"whitespace title", model.Task{Title: "   "}, true},
		{"start without end", model.Task{Title: "Read", StartTime: "09:00"}, true},
		{"end without start", model.Task{Title: "Read", EndTime: "10:00"}, true},
		{"inverted times", model.Task{Title: "Read", StartTime: "11:00", EndTime: "10:00"}, true},
		{"zero-length window", model.Task{Title: "Read", StartTime: "10:00", EndTime: "10:00"}, true},
		{"malformed start", model.Task{Title: "Read", StartTime: "junk", EndTime: "10:00"}, true},
		{"malformed due date", model.Task{Title: "Read", DueDate: "01/02/2024"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTask(&tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTask() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTaskErrorTypes(t *testing.T) {
	var valErr *ValidationError
	err := ValidateTask(&model.Task{Title: " "})
	if !errors.As(err, &valErr) {
		t.Fatalf("blank title error = %v, want *ValidationError", err)
	}

	var parseErr *ParseError
	err = ValidateTask(&model.Task{Title: "Read", StartTime: "nope", EndTime: "10:00"})
	if !errors.As(err, &parseErr) {
		t.Fatalf("malformed clock error = %v, want *ParseError", err)
	}
}

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject model.Subject
		wantErr bool
	}{
		{
			"valid with two slots",
			model.Subject{Name: "Math", FromDate: "2024-01-01", ToDate: "2024-06-30",
				TimeSlots: []model.TimeSlot{slot(1, "09:00", "10:00"), slot(3, "09:00", "10:00")}},
			false,
		},
		{
			"touching slots on same day",
			model.Subject{Name: "Math", FromDate: "2024-01-01", ToDate: "2024-06-30",
				TimeSlots: []model.TimeSlot{slot(1, "09:00", "10:00"), slot(1, "10:00", "11:00")}},
			false,
		},
		{
			"no slots",
			model.Subject{Name: "Math", FromDate: "2024-01-01", ToDate: "2024-06-30"},
			false,
		},
		{
			"empty name",
			model.Subject{Name: "", FromDate: "2024-01-01", ToDate: "2024-06-30"},
			true,
		},
		{
			"from after to",
			model.Subject{Name: "Math", FromDate: "2024-07-01", ToDate: "2024-06-30"},
			true,
		},
		{
			"self-overlapping slots",
			model.Subject{Name: "Math", FromDate: "2024-01-01", ToDate: "2024-06-30",
				TimeSlots: []model.TimeSlot{slot(1, "09:00", "10:30"), slot(1, "10:00", "11:00")}},
			true,
		},
		{
			"slot day out of range",
			model.Subject{Name: "Math", FromDate: "2024-01-01", ToDate: "2024-06-30",
				TimeSlots: []model.TimeSlot{slot(7, "09:00", "10:00")}},
			true,
		},
		{
			"inverted slot times",
			model.Subject{Name: "Math", FromDate: "2024-01-01", ToDate: "2024-06-30",
				TimeSlots: []model.TimeSlot{slot(1, "11:00", "10:00")}},
			true,
		},
		{
			"malformed from date",
			model.Subject{Name: "Math", FromDate: "yesterday", ToDate: "2024-06-30"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubject(&tt.subject)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSubject() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSubjectRangeErrorType(t *testing.T) {
	var rangeErr *InvalidRangeError
	err := ValidateSubject(&model.Subject{Name: "Math", FromDate: "2024-07-01", ToDate: "2024-06-30"})
	if !errors.As(err, &rangeErr) {
		t.Fatalf("backwards range error = %v, want *InvalidRangeError", err)
	}
}
