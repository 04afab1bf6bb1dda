package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
	"github.com/dtroode/hard75/internal/tasks"
)

// Profile handles session establishment and onboarding.
type Profile struct {
	profileService ProfileService
	streakService  StreakService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewProfile(profileService ProfileService, streakService StreakService, contextManager model.ContextManager, logger *logger.Logger) *Profile {
	return &Profile{
		profileService: profileService,
		streakService:  streakService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Session creates the caller's profile on first sign-in and returns it.
func (h *Profile) Session(c *gin.Context) {
	caller, ok := identity(c, h.contextManager)
	if !ok {
		return
	}

	profile, err := h.profileService.EnsureProfile(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newProfileView(profile))
}

type saveProfileRequest struct {
	Name  string       `json:"name"`
	Days  int          `json:"days"`
	Tasks []tasks.Task `json:"tasks"`
}

// Save completes onboarding and starts the challenge.
func (h *Profile) Save(c *gin.Context) {
	caller, ok := identity(c, h.contextManager)
	if !ok {
		return
	}

	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.NewErrInvalidInput("invalid request body: days must be an integer and tasks a list"))
		return
	}

	err := h.streakService.SaveOnboarding(c.Request.Context(), caller, model.OnboardingParams{
		Name:         req.Name,
		DurationDays: req.Days,
		Tasks:        req.Tasks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
