package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
)

// Dashboard handles the paid progress views.
type Dashboard struct {
	dashboardService DashboardService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

func NewDashboard(dashboardService DashboardService, contextManager model.ContextManager, logger *logger.Logger) *Dashboard {
	return &Dashboard{
		dashboardService: dashboardService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

func (h *Dashboard) Get(c *gin.Context) {
	caller, ok := identity(c, h.contextManager)
	if !ok {
		return
	}

	view, err := h.dashboardService.Get(c.Request.Context(), caller.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newDashboardView(view))
}

// History lists daily logs for the ?from= and ?to= range.
func (h *Dashboard) History(c *gin.Context) {
	caller, ok := identity(c, h.contextManager)
	if !ok {
		return
	}

	logs, err := h.dashboardService.History(c.Request.Context(), caller.UserID, c.Query("from"), c.Query("to"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": newDailyLogViews(logs)})
}
