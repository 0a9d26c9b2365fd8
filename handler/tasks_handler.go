package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskmaster/dto"
	"taskmaster/repository"
	"taskmaster/schedule"
	"taskmaster/usecase"
	"taskmaster/utils"
)

type TasksHandler struct {
	service   *usecase.TasksService
	conflicts *usecase.ConflictsService
}

func NewTasksHandler(service *usecase.TasksService, conflicts *usecase.ConflictsService) *TasksHandler {
	return &TasksHandler{service: service, conflicts: conflicts}
}

// writeScheduleError maps domain validation failures to 400s and everything
// else to a 500.
func writeScheduleError(c *gin.Context, err error) {
	var validationErr *schedule.ValidationError
	var parseErr *schedule.ParseError
	var rangeErr *schedule.InvalidRangeError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &parseErr), errors.As(err, &rangeErr):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrTaskNotFound), errors.Is(err, repository.ErrSubjectNotFound):
		utils.NotFound(c, err.Error())
	default:
		utils.InternalError(c, err.Error())
	}
}

func (h *TasksHandler) CreateTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task := req.ToModel(userID.(string))
	conflicts, err := h.service.CreateTask(c.Request.Context(), task)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	utils.Created(c, dto.TaskWriteResponse{
		Task:      dto.ToTaskResponse(task),
		Conflicts: conflicts,
	})
}

func (h *TasksHandler) GetUserTasks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	tasks, err := h.service.GetUserTasks(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToTaskResponses(tasks))
}

func (h *TasksHandler) UpdateTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updates := req.ToModel(userID.(string))
	conflicts, err := h.service.UpdateTask(c.Request.Context(), userID.(string), taskID, updates)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	updates.TaskID = taskID
	utils.Success(c, dto.TaskWriteResponse{
		Task:      dto.ToTaskResponse(updates),
		Conflicts: conflicts,
	})
}

func (h *TasksHandler) DeleteTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), userID.(string), taskID); err != nil {
		writeScheduleError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Task deleted successfully"})
}

func (h *TasksHandler) ToggleTaskComplete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	task, err := h.service.ToggleTask(c.Request.Context(), userID.(string), taskID)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	utils.Success(c, dto.ToTaskResponse(task))
}

// CheckConflicts previews the conflicts a task draft would introduce without
// writing anything.
func (h *TasksHandler) CheckConflicts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		dto.CreateTaskRequest
		ExcludeID string `json:"exclude_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	candidate := req.ToModel(userID.(string))
	conflicts, err := h.conflicts.CheckTask(c.Request.Context(), userID.(string), candidate, req.ExcludeID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"conflicts": conflicts})
}
