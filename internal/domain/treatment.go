package domain

import "time"

// Treatment is one item of a requested treatment bundle
type Treatment struct {
	ID              string
	Name            string
	DurationMinutes int
	RequiresStaff   bool
	RoomIDs         []string // rooms the treatment can take place in
}

// Duration returns the treatment duration
func (t Treatment) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}

// TotalDuration sums the durations of the bundle
func TotalDuration(treatments []Treatment) time.Duration {
	var total time.Duration
	for _, t := range treatments {
		total += t.Duration()
	}
	return total
}

// RequiresStaff returns true if at least one treatment of the bundle needs a staff member
func RequiresStaff(treatments []Treatment) bool {
	for _, t := range treatments {
		if t.RequiresStaff {
			return true
		}
	}
	return false
}
