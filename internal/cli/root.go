// Package cli implements the streakctl commands.
package cli

import (
	"context"
	"io"

	"github.com/dtroode/hard75/internal/clock"
	"github.com/dtroode/hard75/internal/config"
	"github.com/dtroode/hard75/internal/logger"
)

type Context struct {
	context.Context

	Config *config.Config
	Clock  clock.Clock
	Logger *logger.Logger
	Out    io.Writer
}
