package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/clock"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
)

type photoFormat struct {
	contentType string
	ext         string
}

var photoFormats = []photoFormat{
	{contentType: "image/jpeg", ext: "jpg"},
	{contentType: "image/png", ext: "png"},
	{contentType: "image/webp", ext: "webp"},
	{contentType: "image/heic", ext: "heic"},
}

// Photo archives one progress photo per user and day in object storage.
type Photo struct {
	storage  model.Storage
	clock    clock.Clock
	maxBytes int64
	logger   *logger.Logger
}

func NewPhoto(storage model.Storage, clk clock.Clock, maxBytes int64, logger *logger.Logger) *Photo {
	return &Photo{
		storage:  storage,
		clock:    clk,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Upload stores today's photo and replaces one uploaded earlier today in
// another format. It returns the object key.
func (s *Photo) Upload(ctx context.Context, userID uuid.UUID, contentType string, size int64, r io.Reader) (string, error) {
	format, ok := photoFormatFor(contentType)
	if !ok {
		return "", apperrors.NewErrInvalidInput("photo must be a JPEG, PNG, WebP or HEIC image")
	}
	if size <= 0 {
		return "", apperrors.NewErrInvalidInput("photo is empty")
	}
	if size > s.maxBytes {
		return "", apperrors.NewErrInvalidInput(fmt.Sprintf("photo must be at most %d bytes", s.maxBytes))
	}

	today := clock.Today(s.clock)
	key := photoKey(userID, today, format.ext)
	if err := s.storage.Upload(ctx, key, r, size, format.contentType); err != nil {
		s.logger.Error("Photo service: failed to upload photo", "user_id", userID, "date", today, "error", err)
		return "", apperrors.NewErrStorage("upload photo", err)
	}

	for _, other := range photoFormats {
		if other.ext == format.ext {
			continue
		}
		if err := s.deleteIfExists(ctx, photoKey(userID, today, other.ext)); err != nil {
			s.logger.Warn("Photo service: failed to remove replaced photo", "user_id", userID, "date", today, "ext", other.ext, "error", err)
		}
	}

	s.logger.Info("Photo service: photo uploaded", "user_id", userID, "date", today, "size", size)
	return key, nil
}

// Download opens the photo stored for date. The caller closes the reader.
func (s *Photo) Download(ctx context.Context, userID uuid.UUID, date string) (io.ReadCloser, string, error) {
	if _, err := clock.ParseDate(date); err != nil {
		return nil, "", apperrors.NewErrInvalidInput("date must be a YYYY-MM-DD date")
	}

	for _, format := range photoFormats {
		key := photoKey(userID, date, format.ext)
		exists, err := s.storage.Exists(ctx, key)
		if err != nil {
			s.logger.Error("Photo service: failed to look up photo", "user_id", userID, "date", date, "error", err)
			return nil, "", apperrors.NewErrStorage("stat photo", err)
		}
		if !exists {
			continue
		}

		rc, err := s.storage.Download(ctx, key)
		if err != nil {
			s.logger.Error("Photo service: failed to download photo", "user_id", userID, "date", date, "error", err)
			return nil, "", apperrors.NewErrStorage("download photo", err)
		}
		return rc, format.contentType, nil
	}

	return nil, "", apperrors.NewErrNotFound("progress photo")
}

func (s *Photo) deleteIfExists(ctx context.Context, key string) error {
	exists, err := s.storage.Exists(ctx, key)
	if err != nil || !exists {
		return err
	}
	return s.storage.Delete(ctx, key)
}

func photoFormatFor(contentType string) (photoFormat, bool) {
	for _, f := range photoFormats {
		if f.contentType == contentType {
			return f, true
		}
	}
	return photoFormat{}, false
}

func photoKey(userID uuid.UUID, date, ext string) string {
	return fmt.Sprintf("progress-photos/%s/%s.%s", userID, date, ext)
}
