package tasks

const (
	// DefaultDurationDays is the length of the original protocol.
	DefaultDurationDays = 75
	// MinCustomTasks and MaxCustomTasks bound a customized catalog.
	MinCustomTasks = 1
	MaxCustomTasks = 6
)

// Task is a single daily task definition.
type Task struct {
	ID          string `json:"id" validate:"required,max=64"`
	Label       string `json:"label" validate:"required,max=80"`
	Description string `json:"description" validate:"max=280"`
}

var defaultCatalog = []Task{
	{
		ID:          "workout-1",
		Label:       "WORKOUT #1",
		Description: "45 min workout (weights, HIIT, or sport)",
	},
	{
		ID:          "workout-2",
		Label:       "OUTDOOR WALK",
		Description: "45 min walk outside, no excuses",
	},
	{
		ID:          "diet",
		Label:       "CLEAN DIET",
		Description: "Zero cheat meals. Follow your nutrition plan",
	},
	{
		ID:          "water",
		Label:       "GALLON OF WATER",
		Description: "Drink 1 full gallon (~3.8L) of water",
	},
	{
		ID:          "read",
		Label:       "READ 10 PAGES",
		Description: "10 pages of a non-fiction, self-improvement book",
	},
	{
		ID:          "progress-photo",
		Label:       "PROGRESS PHOTO",
		Description: "Take your daily progress photo",
	},
}

// Default returns a copy of the fixed default catalog.
func Default() []Task {
	out := make([]Task, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// Resolve returns the catalog in effect for a challenge: the custom list
// when it is non-empty, the default catalog otherwise.
func Resolve(custom []Task) []Task {
	if len(custom) > 0 {
		return custom
	}
	return Default()
}

// Contains reports whether id is part of the catalog.
func Contains(catalog []Task, id string) bool {
	for _, t := range catalog {
		if t.ID == id {
			return true
		}
	}
	return false
}

// AllComplete reports whether every catalog task is in completed.
func AllComplete(catalog []Task, completed []string) bool {
	done := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		done[id] = struct{}{}
	}
	for _, t := range catalog {
		if _, ok := done[t.ID]; !ok {
			return false
		}
	}
	return true
}

// Toggle flips membership of id in completed and returns a new slice.
// Order of the remaining ids is kept; an added id goes last.
func Toggle(completed []string, id string) []string {
	out := make([]string, 0, len(completed)+1)
	found := false
	for _, c := range completed {
		if c == id {
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
