package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/hard75/internal/api/http/context"
	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/mocks"
	"github.com/dtroode/hard75/internal/model"
	"github.com/dtroode/hard75/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_Handle(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		cookie     string
		parseToken string
		parseID    model.Identity
		parseErr   error
		wantStatus int
	}{
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer token",
			header:     "Bearer good",
			parseToken: "good",
			parseID:    model.Identity{UserID: userID, Email: "a@b.c"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "session cookie",
			cookie:     "from-cookie",
			parseToken: "from-cookie",
			parseID:    model.Identity{UserID: userID},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad",
			parseToken: "bad",
			parseErr:   errors.New("signature is invalid"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "nil subject",
			header:     "Bearer nil",
			parseToken: "nil",
			parseID:    model.Identity{UserID: uuid.Nil},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "other scheme",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mocks.NewTokenManager(t)
			if tt.parseToken != "" {
				tokens.On("ParseSessionToken", tt.parseToken).Return(tt.parseID, tt.parseErr)
			}
			cm := httpcontext.NewManager()
			m := NewAuthenticate(tokens, cm, "hard75_session", testutil.MakeNoopLogger())

			var got model.Identity
			r := gin.New()
			r.GET("/", m.Handle(), func(c *gin.Context) {
				got, _ = cm.GetIdentityFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "hard75_session", Value: tt.cookie})
			}

			w := serve(r, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.parseID, got)
			} else {
				assert.Contains(t, w.Body.String(), "not authenticated")
			}
		})
	}
}

func TestCronSecret_Handle(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
	}{
		{name: "valid", secret: "s3cret", header: "Bearer s3cret", wantStatus: http.StatusOK},
		{name: "wrong secret", secret: "s3cret", header: "Bearer nope", wantStatus: http.StatusForbidden},
		{name: "missing header", secret: "s3cret", wantStatus: http.StatusForbidden},
		{name: "raw secret without scheme", secret: "s3cret", header: "s3cret", wantStatus: http.StatusForbidden},
		{name: "unconfigured", secret: "", header: "Bearer ", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/", NewCronSecret(tt.secret, testutil.MakeNoopLogger()).Handle(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.wantStatus, serve(r, req).Code)
		})
	}
}

type stubChecker struct {
	err error
}

func (s stubChecker) RequirePaid(context.Context, uuid.UUID) error { return s.err }

func TestRequirePaid_Handle(t *testing.T) {
	tests := []struct {
		name       string
		identity   bool
		checkErr   error
		wantStatus int
	}{
		{name: "paid", identity: true, wantStatus: http.StatusOK},
		{name: "unpaid", identity: true, checkErr: apperrors.NewErrPaymentRequired(), wantStatus: http.StatusPaymentRequired},
		{name: "no profile", identity: true, checkErr: apperrors.NewErrProfileNotFound(), wantStatus: http.StatusNotFound},
		{name: "not authenticated", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := httpcontext.NewManager()
			r := gin.New()
			if tt.identity {
				r.Use(func(c *gin.Context) {
					c.Request = c.Request.WithContext(cm.SetIdentityToContext(c.Request.Context(), model.Identity{UserID: uuid.New()}))
				})
			}
			r.GET("/", NewRequirePaid(stubChecker{err: tt.checkErr}, cm).Handle(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			assert.Equal(t, tt.wantStatus, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(20 * time.Millisecond))
	r.GET("/", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
			c.Status(http.StatusGatewayTimeout)
		case <-time.After(time.Second):
			c.Status(http.StatusOK)
		}
	})

	assert.Equal(t, http.StatusGatewayTimeout, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestTimeout_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(0))
	r.GET("/", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		assert.False(t, hasDeadline)
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestLogging_Handle(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), NewLogging(logger.NewWithWriter(&buf, 0)).Handle())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("db down"))
		c.Status(http.StatusInternalServerError)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Contains(t, buf.String(), "HTTP request completed")
	assert.Contains(t, buf.String(), "path=/ok")
	assert.Contains(t, buf.String(), "status=200")

	buf.Reset()
	serve(r, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "db down")
}
