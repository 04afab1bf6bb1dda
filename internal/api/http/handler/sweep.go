package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/logger"
)

// Sweep handles the scheduler's daily reset trigger.
type Sweep struct {
	streakService StreakService
	logger        *logger.Logger
}

func NewSweep(streakService StreakService, logger *logger.Logger) *Sweep {
	return &Sweep{streakService: streakService, logger: logger}
}

type sweepResponse struct {
	Message string `json:"message"`
	Reset   int64  `json:"reset"`
}

// Reset runs the daily sweep for today.
func (h *Sweep) Reset(c *gin.Context) {
	today := h.streakService.Today()

	result, err := h.streakService.DailySweep(c.Request.Context(), today)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, sweepResponse{
		Message: SweepMessage(result.ResetCount),
		Reset:   result.ResetCount,
	})
}

// SweepMessage describes a sweep result for humans.
func SweepMessage(reset int64) string {
	if reset == 0 {
		return "No streaks to reset"
	}
	return fmt.Sprintf("Reset %d streaks", reset)
}
