package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
)

// multipartOverhead is allowed on top of the photo size for form framing.
const multipartOverhead = 1 << 20

// Photo handles progress photo uploads and downloads.
type Photo struct {
	photoService   PhotoService
	contextManager model.ContextManager
	maxBytes       int64
	logger         *logger.Logger
}

func NewPhoto(photoService PhotoService, contextManager model.ContextManager, maxBytes int64, logger *logger.Logger) *Photo {
	return &Photo{
		photoService:   photoService,
		contextManager: contextManager,
		maxBytes:       maxBytes,
		logger:         logger,
	}
}

// Upload stores the multipart "photo" file as today's progress photo.
func (h *Photo) Upload(c *gin.Context) {
	caller, ok := identity(c, h.contextManager)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	fh, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, apperrors.NewErrInvalidInput("photo file is required"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error(c, apperrors.NewErrInvalidInput("photo file is unreadable"))
		return
	}
	defer f.Close()

	key, err := h.photoService.Upload(c.Request.Context(), caller.UserID, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "key": key})
}

// Download streams the photo stored for the :date path parameter.
func (h *Photo) Download(c *gin.Context) {
	caller, ok := identity(c, h.contextManager)
	if !ok {
		return
	}

	rc, contentType, err := h.photoService.Download(c.Request.Context(), caller.UserID, c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}
