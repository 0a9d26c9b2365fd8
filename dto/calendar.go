package dto

// CalendarViewResponse is a window of the calendar: tasks grouped per day plus
// the expanded class sessions falling inside the window.
type CalendarViewResponse struct {
	Start    string                    `json:"start"`
	End      string                    `json:"end"`
	Tasks    map[string][]TaskResponse `json:"tasks"`
	Sessions []SessionResponse         `json:"sessions"`
}
