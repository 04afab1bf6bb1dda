package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/model"
)

// StreakService defines the streak engine operations exposed over HTTP.
type StreakService interface {
	Today() string
	ToggleTask(ctx context.Context, userID uuid.UUID, taskID string) (model.ToggleResult, error)
	DailySweep(ctx context.Context, today string) (model.SweepResult, error)
	SaveOnboarding(ctx context.Context, identity model.Identity, params model.OnboardingParams) error
}

// ProfileService defines profile operations.
type ProfileService interface {
	EnsureProfile(ctx context.Context, identity model.Identity) (model.Profile, error)
}

// PaymentService defines webhook operations.
type PaymentService interface {
	VerifySignature(signature string) error
	ProcessEvent(ctx context.Context, event model.PaymentEvent) (model.PaymentOutcome, error)
}

// DashboardService defines the read-only progress views.
type DashboardService interface {
	Get(ctx context.Context, userID uuid.UUID) (model.Dashboard, error)
	History(ctx context.Context, userID uuid.UUID, from, to string) ([]model.DailyLog, error)
}

// PhotoService defines progress photo operations.
type PhotoService interface {
	Upload(ctx context.Context, userID uuid.UUID, contentType string, size int64, r io.Reader) (string, error)
	Download(ctx context.Context, userID uuid.UUID, date string) (io.ReadCloser, string, error)
}

// Pinger checks that the datastore is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// identity returns the caller set by the authenticate middleware, or aborts
// the request with 401.
func identity(c *gin.Context, cm model.ContextManager) (model.Identity, bool) {
	id, ok := cm.GetIdentityFromContext(c.Request.Context())
	if !ok {
		response.Error(c, apperrors.NewErrMissingSession())
		return model.Identity{}, false
	}
	return id, true
}
