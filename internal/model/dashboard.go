package model

import (
	"github.com/dtroode/hard75/internal/motivation"
	"github.com/dtroode/hard75/internal/tasks"
)

// Dashboard is everything the paid dashboard renders for one day.
type Dashboard struct {
	Today                string
	SecondsUntilMidnight int64
	State                ChallengeState
	// Challenge is nil in the NotStarted state.
	Challenge      *Challenge
	Tasks          []tasks.Task
	CompletedTasks []string
	AllComplete    bool
	StreakBroken   bool
	Motivation     *motivation.Message
	Milestone      string
}
