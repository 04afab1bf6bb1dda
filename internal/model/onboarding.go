package model

import "github.com/dtroode/hard75/internal/tasks"

// OnboardingParams is what the onboarding wizard submits.
type OnboardingParams struct {
	Name         string       `validate:"max=100"`
	DurationDays int          `validate:"gt=0"`
	Tasks        []tasks.Task `validate:"min=1,max=6,unique=ID,dive"`
}
