package domain

import (
	"time"

	"github.com/m04kA/SMC-TimeslotService/pkg/types"
)

// ShopInfo is the shop configuration record
type ShopInfo struct {
	ID           string
	Description  string
	Email        string
	PhoneNumber  string
	OpeningHours []OpeningHours
}

// OpeningHours is the shop schedule for one weekday
type OpeningHours struct {
	Day         time.Weekday
	OpeningTime types.TimeString
	ClosingTime types.TimeString
	Opened      bool
}

// WorkingWindow is the interval of the day in which slots may be placed
type WorkingWindow struct {
	Start time.Time
	End   time.Time
}

// HoursFor returns the opening hours entry for the weekday, if any
func (s *ShopInfo) HoursFor(day time.Weekday) (OpeningHours, bool) {
	for _, h := range s.OpeningHours {
		if h.Day == day {
			return h, true
		}
	}
	return OpeningHours{}, false
}

// WorkingWindow resolves the shop's open interval on the calendar day of date.
// Returns false when the shop is closed that day, has no hours configured
// or the configured hours are not a valid interval.
func (s *ShopInfo) WorkingWindow(date time.Time) (WorkingWindow, bool) {
	hours, ok := s.HoursFor(date.Weekday())
	if !ok || !hours.Opened {
		return WorkingWindow{}, false
	}

	start, err := hours.OpeningTime.On(date)
	if err != nil {
		return WorkingWindow{}, false
	}
	end, err := hours.ClosingTime.On(date)
	if err != nil {
		return WorkingWindow{}, false
	}
	if !start.Before(end) {
		return WorkingWindow{}, false
	}

	return WorkingWindow{Start: start, End: end}, true
}

// WithLeadTime applies the same-day lead time.
// If date is today (calendar day, in date's location) the earliest start becomes
// the current hour with minutes dropped plus SameDayLeadTime, replacing the opening time.
// End is untouched, so the window may become empty.
func (w WorkingWindow) WithLeadTime(date, now time.Time) (WorkingWindow, bool) {
	if !types.IsSameDay(date, now) {
		return w, false
	}

	local := now.In(date.Location())
	w.Start = time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, local.Location()).
		Add(SameDayLeadTime)
	return w, true
}

// IsEmpty returns true if no slot can start inside the window
func (w WorkingWindow) IsEmpty() bool {
	return !w.Start.Before(w.End)
}
