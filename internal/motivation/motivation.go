// Package motivation holds the messages shown on key days of a challenge.
package motivation

import (
	"fmt"
	"math"
)

// Message is a callout for a specific day.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var messages = map[int]Message{
	1:  {Title: "Day 1.", Body: "The hardest part was starting. You already did that."},
	3:  {Title: "Day 3: the first dropout point.", Body: "Most people quit before Day 3. You made it. Keep going."},
	7:  {Title: "One week.", Body: "Your brain has started noticing the pattern. Don't break it now."},
	14: {Title: "Two weeks.", Body: "Willpower is unreliable. Habit is what you're building. It's forming."},
	21: {Title: "Day 21.", Body: "People used to believe 21 days built a habit. It doesn't, but it takes discipline to get here."},
	30: {Title: "30 days.", Body: "One month. Most New Year's resolutions are already dead. Not yours."},
	40: {Title: "The second dropout point.", Body: "Day 40 has the second highest quit rate. Today is not the day."},
	50: {Title: "50 days in.", Body: "Your discipline is compounding. The version of you at Day 1 wouldn't recognise this."},
	66: {Title: "Day 66: habit formed.", Body: "This is when a behaviour becomes genuinely automatic. You're there."},
	75: {Title: "Day 75: the original protocol ends.", Body: "You did it. Only a small percentage of people who start ever finish. You're one of them."},
	90: {Title: "Day 90: beyond the limit.", Body: "You didn't just do the hard thing. You went further. This is who you are now."},
}

// For returns the message for day, if there is one.
func For(day int) (Message, bool) {
	m, ok := messages[day]
	return m, ok
}

// MilestoneLabel describes progress through a challenge of total days.
func MilestoneLabel(day, total int) string {
	if total <= 0 {
		return ""
	}
	left := total - day
	pct := int(math.Round(float64(day) / float64(total) * 100))

	switch {
	case pct >= 100:
		return "Challenge complete."
	case pct >= 75:
		return fmt.Sprintf("Final stretch: %d days left.", left)
	case pct >= 50:
		return fmt.Sprintf("Over halfway: %d days remaining.", left)
	case pct >= 25:
		return fmt.Sprintf("%d%% in: %d days to go.", pct, left)
	default:
		return fmt.Sprintf("%d days remaining.", left)
	}
}
