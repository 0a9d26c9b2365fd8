package handler

import (
	"github.com/gin-gonic/gin"

	"taskmaster/dto"
	"taskmaster/usecase"
	"taskmaster/utils"
)

type SubjectsHandler struct {
	service *usecase.TimetableService
}

func NewSubjectsHandler(service *usecase.TimetableService) *SubjectsHandler {
	return &SubjectsHandler{service: service}
}

func (h *SubjectsHandler) CreateSubject(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	subject := req.ToModel(userID.(string))
	sessions, err := h.service.CreateSubject(c.Request.Context(), subject)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	utils.Created(c, dto.SubjectWriteResponse{
		Subject:  dto.ToSubjectResponse(subject),
		Sessions: sessions,
	})
}

func (h *SubjectsHandler) GetUserSubjects(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	subjects, err := h.service.GetUserSubjects(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToSubjectResponses(subjects))
}

func (h *SubjectsHandler) UpdateSubject(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	subjectID := c.Param("id")
	if subjectID == "" {
		utils.BadRequest(c, "Missing subject ID")
		return
	}

	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updates := req.ToModel(userID.(string))
	sessions, err := h.service.UpdateSubject(c.Request.Context(), userID.(string), subjectID, updates)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	updates.SubjectID = subjectID
	utils.Success(c, dto.SubjectWriteResponse{
		Subject:  dto.ToSubjectResponse(updates),
		Sessions: sessions,
	})
}

func (h *SubjectsHandler) DeleteSubject(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	subjectID := c.Param("id")
	if subjectID == "" {
		utils.BadRequest(c, "Missing subject ID")
		return
	}

	if err := h.service.DeleteSubject(c.Request.Context(), userID.(string), subjectID); err != nil {
		writeScheduleError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Subject deleted successfully"})
}

func (h *SubjectsHandler) GetSubjectSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	subjectID := c.Param("id")
	if subjectID == "" {
		utils.BadRequest(c, "Missing subject ID")
		return
	}

	sessions, err := h.service.GetSubjectSessions(c.Request.Context(), subjectID, userID.(string))
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	utils.Success(c, dto.ToSessionResponses(sessions))
}

// RegenerateSessions rebuilds the subject's materialized class sessions from
// its weekly slots, replacing whatever was stored before.
func (h *SubjectsHandler) RegenerateSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	subjectID := c.Param("id")
	if subjectID == "" {
		utils.BadRequest(c, "Missing subject ID")
		return
	}

	sessions, err := h.service.RegenerateSessions(c.Request.Context(), userID.(string), subjectID)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	utils.Success(c, gin.H{"sessions_generated": sessions})
}
