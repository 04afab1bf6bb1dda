package handler

import (
	"time"

	"github.com/dtroode/hard75/internal/model"
	"github.com/dtroode/hard75/internal/motivation"
	"github.com/dtroode/hard75/internal/tasks"
)

type profileView struct {
	ID                 string    `json:"id"`
	Email              *string   `json:"email"`
	Name               *string   `json:"name"`
	HasPaid            bool      `json:"hasPaid"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
}

func newProfileView(p model.Profile) profileView {
	return profileView{
		ID:                 p.ID.String(),
		Email:              p.Email,
		Name:               p.Name,
		HasPaid:            p.HasPaid,
		OnboardingComplete: p.OnboardingComplete,
		CreatedAt:          p.CreatedAt,
	}
}

type challengeView struct {
	DurationDays      int                  `json:"durationDays"`
	StartDate         string               `json:"startDate"`
	EndDate           string               `json:"endDate"`
	CurrentDay        int                  `json:"currentDay"`
	StreakActive      bool                 `json:"streakActive"`
	LastCompletedDate *string              `json:"lastCompletedDate"`
	State             model.ChallengeState `json:"state"`
}

type dashboardView struct {
	Today                string               `json:"today"`
	SecondsUntilMidnight int64                `json:"secondsUntilMidnight"`
	State                model.ChallengeState `json:"state"`
	Challenge            *challengeView       `json:"challenge"`
	Tasks                []tasks.Task         `json:"tasks"`
	CompletedTasks       []string             `json:"completedTasks"`
	AllComplete          bool                 `json:"allComplete"`
	StreakBroken         bool                 `json:"streakBroken"`
	Motivation           *motivation.Message  `json:"motivation"`
	Milestone            string               `json:"milestone,omitempty"`
}

func newDashboardView(d model.Dashboard) dashboardView {
	view := dashboardView{
		Today:                d.Today,
		SecondsUntilMidnight: d.SecondsUntilMidnight,
		State:                d.State,
		Tasks:                d.Tasks,
		CompletedTasks:       d.CompletedTasks,
		AllComplete:          d.AllComplete,
		StreakBroken:         d.StreakBroken,
		Motivation:           d.Motivation,
		Milestone:            d.Milestone,
	}
	if c := d.Challenge; c != nil {
		view.Challenge = &challengeView{
			DurationDays:      c.DurationDays,
			StartDate:         c.StartDate,
			EndDate:           c.EndDate,
			CurrentDay:        c.CurrentDay,
			StreakActive:      c.StreakActive,
			LastCompletedDate: c.LastCompletedDate,
			State:             c.State(),
		}
	}
	return view
}

type dailyLogView struct {
	Date           string   `json:"date"`
	CompletedTasks []string `json:"completedTasks"`
	AllComplete    bool     `json:"allComplete"`
}

func newDailyLogViews(logs []model.DailyLog) []dailyLogView {
	views := make([]dailyLogView, 0, len(logs))
	for _, l := range logs {
		completed := l.CompletedTasks
		if completed == nil {
			completed = []string{}
		}
		views = append(views, dailyLogView{Date: l.LogDate, CompletedTasks: completed, AllComplete: l.AllComplete})
	}
	return views
}
