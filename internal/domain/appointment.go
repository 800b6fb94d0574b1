package domain

import "time"

// Appointment is an already booked appointment.
// Read-only snapshot for the requested date.
type Appointment struct {
	ID        string
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	StaffIDs  []string
	RoomIDs   []string
}

// Overlaps returns true if the appointment intersects [start, end).
// Intervals touching at an endpoint do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return Overlaps(a.StartTime, a.EndTime, start, end)
}

// Overlaps reports whether half-open intervals [aStart, aEnd) and [bStart, bEnd) intersect
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
