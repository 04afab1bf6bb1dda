package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
)

// Task handles checklist endpoints.
type Task struct {
	streakService  StreakService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewTask(streakService StreakService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		streakService:  streakService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type completeTaskRequest struct {
	TaskID string `json:"taskId" binding:"required"`
}

type completeTaskResponse struct {
	Success        bool     `json:"success"`
	CompletedTasks []string `json:"completedTasks"`
	AllComplete    bool     `json:"allComplete"`
	CurrentDay     int      `json:"currentDay"`
	Advanced       bool     `json:"advanced"`
}

// Complete toggles one task in today's log.
func (h *Task) Complete(c *gin.Context) {
	caller, ok := identity(c, h.contextManager)
	if !ok {
		return
	}

	var req completeTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.NewErrInvalidInput("taskId is required"))
		return
	}

	h.logger.Debug("Task handler: toggling task", "user_id", caller.UserID, "task_id", req.TaskID)

	result, err := h.streakService.ToggleTask(c.Request.Context(), caller.UserID, req.TaskID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, completeTaskResponse{
		Success:        true,
		CompletedTasks: result.CompletedTasks,
		AllComplete:    result.AllComplete,
		CurrentDay:     result.CurrentDay,
		Advanced:       result.Advanced,
	})
}
