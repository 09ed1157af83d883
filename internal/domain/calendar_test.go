package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingHorizonEnd(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		{
			name:  "middle of month",
			today: time.Date(2025, 3, 15, 13, 45, 0, 0, time.UTC),
			want:  time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "year boundary",
			today: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "end of december",
			today: time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC),
			// AddDate нормализует 31 февраля в 3 марта
			want: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookingHorizonEnd(tt.today))
		})
	}
}

func TestCalendarDay_AvailableSlots(t *testing.T) {
	day := CalendarDay{
		Slots: []TimeSlot{
			{StartTime: "10:00", RemainingSpots: 2, TotalSpots: 2},
			{StartTime: "11:00", RemainingSpots: 0, TotalSpots: 2},
			{StartTime: "12:00", RemainingSpots: 1, TotalSpots: 2},
		},
	}

	assert.Equal(t, 2, day.AvailableSlots())
	assert.True(t, day.IsBookable())

	day.IsPast = true
	assert.False(t, day.IsBookable())
}

func TestLessonBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		active bool
	}{
		{StatusScheduled, true},
		{StatusCompleted, true},
		{StatusCancelledByParent, false},
		{StatusCancelledByAdmin, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := LessonBooking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
		})
	}
}

func TestLessonBooking_OccupiesSlot(t *testing.T) {
	b := LessonBooking{Status: StatusScheduled, TeacherID: 7, StartTime: "10:00"}

	assert.True(t, b.OccupiesSlot(7, "10:00"))
	assert.False(t, b.OccupiesSlot(7, "11:00"))
	assert.False(t, b.OccupiesSlot(8, "10:00"))

	b.Status = StatusCancelledByParent
	assert.False(t, b.OccupiesSlot(7, "10:00"))
}

func TestScheduleTemplate_DurationMinutes(t *testing.T) {
	tmpl := ScheduleTemplate{StartTime: "10:00", EndTime: "11:30"}
	assert.Equal(t, 90, tmpl.DurationMinutes())

	tmpl = ScheduleTemplate{StartTime: "11:00", EndTime: "10:00"}
	assert.Equal(t, 0, tmpl.DurationMinutes())
}
