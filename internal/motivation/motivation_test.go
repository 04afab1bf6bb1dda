package motivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	m, ok := For(1)
	assert.True(t, ok)
	assert.Equal(t, "Day 1.", m.Title)

	_, ok = For(2)
	assert.False(t, ok)
}

func TestMilestoneLabel(t *testing.T) {
	tests := []struct {
		day, total int
		want       string
	}{
		{day: 1, total: 75, want: "74 days remaining."},
		{day: 20, total: 75, want: "27% in: 55 days to go."},
		{day: 40, total: 75, want: "Over halfway: 35 days remaining."},
		{day: 60, total: 75, want: "Final stretch: 15 days left."},
		{day: 75, total: 75, want: "Challenge complete."},
		{day: 80, total: 75, want: "Challenge complete."},
		{day: 5, total: 0, want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MilestoneLabel(tt.day, tt.total))
	}
}
