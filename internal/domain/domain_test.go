package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 19.10.2026 is a Monday
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"inside", at(9, 0), at(11, 0), at(9, 30), at(10, 0), true},
		{"partial", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"touching end", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"touching start", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(9, 0), at(9, 30), at(12, 0), at(13, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd), "symmetric")
		})
	}
}

func TestStaffMember_ShiftOn(t *testing.T) {
	member := &StaffMember{
		ID: "emp-1",
		WorkingHours: []StaffWorkingHours{
			{DayOfWeek: time.Monday, Start: "09:00", End: "12:00", IsWorkingDay: true},
			{DayOfWeek: time.Tuesday, Start: "09:00", End: "18:00", IsWorkingDay: false},
		},
	}

	shift, ok, err := member.ShiftOn(monday)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, at(9, 0), shift.Start)
	assert.Equal(t, at(12, 0), shift.End)
	assert.Same(t, member, shift.Member)

	_, ok, err = member.ShiftOn(monday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, ok, "not a working day")

	_, ok, err = member.ShiftOn(monday.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.False(t, ok, "no schedule entry")
}

func TestStaffShift_Covers(t *testing.T) {
	shift := StaffShift{Start: at(9, 0), End: at(12, 0)}

	assert.True(t, shift.Covers(at(9, 0), at(12, 0)))
	assert.True(t, shift.Covers(at(10, 0), at(11, 0)))
	assert.False(t, shift.Covers(at(8, 30), at(9, 30)))
	assert.False(t, shift.Covers(at(11, 30), at(12, 30)))
}

func TestShopInfo_WorkingWindow(t *testing.T) {
	shop := &ShopInfo{OpeningHours: []OpeningHours{
		{Day: time.Monday, OpeningTime: "09:00", ClosingTime: "17:00", Opened: true},
		{Day: time.Tuesday, OpeningTime: "09:00", ClosingTime: "17:00", Opened: false},
		{Day: time.Wednesday, OpeningTime: "17:00", ClosingTime: "09:00", Opened: true},
	}}

	window, ok := shop.WorkingWindow(monday)
	require.True(t, ok)
	assert.Equal(t, WorkingWindow{Start: at(9, 0), End: at(17, 0)}, window)

	_, ok = shop.WorkingWindow(monday.AddDate(0, 0, 1))
	assert.False(t, ok, "closed")

	_, ok = shop.WorkingWindow(monday.AddDate(0, 0, 2))
	assert.False(t, ok, "inverted hours")

	_, ok = shop.WorkingWindow(monday.AddDate(0, 0, 3))
	assert.False(t, ok, "no entry")
}

func TestWorkingWindow_WithLeadTime(t *testing.T) {
	window := WorkingWindow{Start: at(9, 0), End: at(17, 0)}

	t.Run("other day is untouched", func(t *testing.T) {
		got, adjusted := window.WithLeadTime(monday, monday.AddDate(0, 0, -1).Add(10*time.Hour))
		assert.False(t, adjusted)
		assert.Equal(t, window, got)
	})

	t.Run("today drops minutes and adds three hours", func(t *testing.T) {
		got, adjusted := window.WithLeadTime(monday, at(10, 5).Add(42*time.Second))
		assert.True(t, adjusted)
		assert.Equal(t, at(13, 0), got.Start)
		assert.Equal(t, at(17, 0), got.End)
	})

	t.Run("early morning replaces opening time", func(t *testing.T) {
		got, adjusted := window.WithLeadTime(monday, at(4, 30))
		assert.True(t, adjusted)
		assert.Equal(t, at(7, 0), got.Start)
		assert.Equal(t, at(17, 0), got.End)
	})

	t.Run("late evening empties the window", func(t *testing.T) {
		got, _ := window.WithLeadTime(monday, at(16, 10))
		assert.Equal(t, at(19, 0), got.Start)
		assert.True(t, got.IsEmpty())
	})
}

func TestTotalDuration(t *testing.T) {
	bundle := []Treatment{
		{ID: "t1", DurationMinutes: 30},
		{ID: "t2", DurationMinutes: 45, RequiresStaff: true},
	}

	assert.Equal(t, 75*time.Minute, TotalDuration(bundle))
	assert.True(t, RequiresStaff(bundle))
	assert.False(t, RequiresStaff(bundle[:1]))
}
