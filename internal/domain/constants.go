package domain

import "time"

// Business constants of the slot search
const (
	// SlotStep is the distance between two consecutive candidate slot starts
	SlotStep = 30 * time.Minute

	// SameDayLeadTime is added to the current hour (minutes dropped) for same-day searches
	SameDayLeadTime = 3 * time.Hour
)
