package domain

import "time"

// CandidateSlot is a bookable time window with the resources it would reserve
type CandidateSlot struct {
	Start    time.Time
	End      time.Time
	StaffIDs []string // empty if no treatment of the bundle needs staff
	RoomIDs  []string
}

// Duration returns the slot length
func (s CandidateSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
