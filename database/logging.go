package database

import (
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/dtroode/hard75/internal/logger"
)

func init() {
	goose.SetLogger(goose.NopLogger())
}

// gooseLogger adapts logger.Logger to goose.Logger.
type gooseLogger struct {
	logger *logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Info("Migrations: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *gooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Fatal("Migrations: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// SetLogger routes migration progress to l. Until it is called, progress is
// discarded.
func SetLogger(l *logger.Logger) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if l == nil {
		goose.SetLogger(goose.NopLogger())
		return
	}
	goose.SetLogger(&gooseLogger{logger: l})
}
