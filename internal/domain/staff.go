package domain

import (
	"time"

	"github.com/m04kA/SMC-TimeslotService/pkg/types"
)

// StaffMember represents an employee of the shop
type StaffMember struct {
	ID           string
	Name         string
	TreatmentIDs []string
	WorkingHours []StaffWorkingHours
}

// StaffWorkingHours is one entry of a weekly schedule
type StaffWorkingHours struct {
	DayOfWeek    time.Weekday
	Start        types.TimeString
	End          types.TimeString
	IsWorkingDay bool
}

// CanPerform returns true if the member is eligible for the treatment
func (s *StaffMember) CanPerform(treatmentID string) bool {
	for _, id := range s.TreatmentIDs {
		if id == treatmentID {
			return true
		}
	}
	return false
}

// ScheduleFor returns the schedule entry for the weekday, if any
func (s *StaffMember) ScheduleFor(day time.Weekday) (StaffWorkingHours, bool) {
	for _, wh := range s.WorkingHours {
		if wh.DayOfWeek == day {
			return wh, true
		}
	}
	return StaffWorkingHours{}, false
}

// ShiftOn resolves the member's shift for the calendar day of date.
// Returns false if the member does not work that day.
func (s *StaffMember) ShiftOn(date time.Time) (StaffShift, bool, error) {
	wh, ok := s.ScheduleFor(date.Weekday())
	if !ok || !wh.IsWorkingDay {
		return StaffShift{}, false, nil
	}

	start, err := wh.Start.On(date)
	if err != nil {
		return StaffShift{}, false, err
	}
	end, err := wh.End.On(date)
	if err != nil {
		return StaffShift{}, false, err
	}

	return StaffShift{Member: s, Start: start, End: end}, true, nil
}

// StaffShift is a staff member together with the shift resolved for a requested date.
// Derived per request, never persisted.
type StaffShift struct {
	Member *StaffMember
	Start  time.Time
	End    time.Time
}

// Covers returns true if the shift fully contains [start, end]
func (s StaffShift) Covers(start, end time.Time) bool {
	return !s.Start.After(start) && !s.End.Before(end)
}
