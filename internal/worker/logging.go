package worker

import (
	"fmt"

	"github.com/dtroode/hard75/internal/logger"
)

// asynqLogger adapts logger.Logger to asynq.Logger.
type asynqLogger struct {
	logger *logger.Logger
}

func (a *asynqLogger) Debug(args ...interface{}) {
	a.logger.Debug(fmt.Sprint(args...))
}

func (a *asynqLogger) Info(args ...interface{}) {
	a.logger.Info(fmt.Sprint(args...))
}

func (a *asynqLogger) Warn(args ...interface{}) {
	a.logger.Warn(fmt.Sprint(args...))
}

func (a *asynqLogger) Error(args ...interface{}) {
	a.logger.Error(fmt.Sprint(args...))
}

func (a *asynqLogger) Fatal(args ...interface{}) {
	a.logger.Fatal(fmt.Sprint(args...))
}
