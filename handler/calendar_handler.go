package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"

	"taskmaster/dto"
	"taskmaster/model"
	"taskmaster/schedule"
	"taskmaster/usecase"
	"taskmaster/utils"
)

type CalendarHandler struct {
	tasks     *usecase.TasksService
	timetable *usecase.TimetableService
}

func NewCalendarHandler(tasks *usecase.TasksService, timetable *usecase.TimetableService) *CalendarHandler {
	return &CalendarHandler{tasks: tasks, timetable: timetable}
}

// WeekView returns the tasks and class sessions for the Monday-to-Sunday week
// containing the given date (default today).
func (h *CalendarHandler) WeekView(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	anchor := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(schedule.DateLayout, dateStr)
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		anchor = parsed
	}

	start, end := schedule.WeekRange(anchor)
	h.renderView(c, userID.(string), start, end)
}

// MonthView returns the tasks and class sessions for a calendar month.
func (h *CalendarHandler) MonthView(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			utils.BadRequest(c, "Invalid year")
			return
		}
		year = parsed
	}
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			utils.BadRequest(c, "Invalid month, expected 1-12")
			return
		}
		month = parsed
	}

	start, end := schedule.MonthRange(year, time.Month(month))
	h.renderView(c, userID.(string), start, end)
}

func (h *CalendarHandler) renderView(c *gin.Context, userID string, start, end time.Time) {
	tasks, err := h.tasks.GetUserTasks(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	fromStr := start.Format(schedule.DateLayout)
	toStr := end.Format(schedule.DateLayout)

	sessions, err := h.timetable.GetUserSessionsInRange(c.Request.Context(), userID, fromStr, toStr)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	inRange := schedule.FilterTasksByRange(tasks, start, end)
	grouped := make(map[string][]dto.TaskResponse)
	for day, dayTasks := range schedule.GroupTasksByDate(inRange) {
		grouped[day] = dto.ToTaskResponses(dayTasks)
	}

	utils.Success(c, dto.CalendarViewResponse{
		Start:    fromStr,
		End:      toStr,
		Tasks:    grouped,
		Sessions: dto.ToSessionResponses(sessions),
	})
}

// ExportICS serves the user's dated tasks and class sessions as an iCalendar
// feed importable into external calendar apps.
func (h *CalendarHandler) ExportICS(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	tasks, err := h.tasks.GetUserTasks(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	subjects, err := h.timetable.GetUserSubjects(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	subjectNames := make(map[string]string, len(subjects))
	labels := make(map[string]string, len(subjects))
	for _, s := range subjects {
		subjectNames[s.SubjectID] = s.Name
		labels[s.SubjectID] = s.Location
	}

	// Export a year's window of sessions centered on today.
	now := time.Now()
	from := now.AddDate(0, -6, 0).Format(schedule.DateLayout)
	to := now.AddDate(0, 6, 0).Format(schedule.DateLayout)
	sessions, err := h.timetable.GetUserSessionsInRange(c.Request.Context(), userID.(string), from, to)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//taskmaster//EN")

	for _, t := range tasks {
		if t.DueDate == "" {
			continue
		}
		addTaskEvent(cal, t)
	}
	for _, s := range sessions {
		addSessionEvent(cal, s, subjectNames[s.SubjectID], labels[s.SubjectID])
	}

	c.Header("Content-Disposition", `attachment; filename="taskmaster.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}

func addTaskEvent(cal *ics.Calendar, t *model.Task) {
	event := cal.AddEvent(fmt.Sprintf("task-%s@taskmaster", t.TaskID))
	event.SetCreatedTime(t.CreatedAt)
	event.SetDtStampTime(time.Now())
	event.SetSummary(t.Title)
	if t.Description != "" {
		event.SetDescription(t.Description)
	}

	if t.HasTimeWindow() {
		start, endAt, err := taskWindow(t)
		if err != nil {
			return
		}
		event.SetStartAt(start)
		event.SetEndAt(endAt)
		return
	}

	due, err := time.Parse(schedule.DateLayout, t.DueDate)
	if err != nil {
		return
	}
	event.SetAllDayStartAt(due)
	event.SetAllDayEndAt(due.AddDate(0, 0, 1))
}

func addSessionEvent(cal *ics.Calendar, s *model.ClassSession, subjectName, location string) {
	start, endAt, err := sessionWindow(s)
	if err != nil {
		return
	}

	event := cal.AddEvent(fmt.Sprintf("session-%s@taskmaster", s.SessionID))
	event.SetCreatedTime(s.CreatedAt)
	event.SetDtStampTime(time.Now())
	if subjectName != "" {
		event.SetSummary(subjectName)
	} else {
		event.SetSummary("Class session")
	}
	if location != "" {
		event.SetLocation(location)
	}
	event.SetStartAt(start)
	event.SetEndAt(endAt)
}

func taskWindow(t *model.Task) (time.Time, time.Time, error) {
	return clockWindow(t.DueDate, t.StartTime, t.EndTime)
}

func sessionWindow(s *model.ClassSession) (time.Time, time.Time, error) {
	return clockWindow(s.Date, s.TimeSlot.StartTime, s.TimeSlot.EndTime)
}

func clockWindow(date, startClock, endClock string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+startClock, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endAt, err := time.ParseInLocation("2006-01-02 15:04", date+" "+endClock, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, endAt, nil
}
