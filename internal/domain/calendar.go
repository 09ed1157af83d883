package domain

import (
	"time"

	"github.com/lessonhub/LMS-BookingService/pkg/types"
)

// TimeSlot represents a computed time window with a derived remaining-capacity value
// Ephemeral: recomputed on every calendar query, never persisted
type TimeSlot struct {
	StartTime      types.TimeString
	EndTime        types.TimeString
	TeacherID      int64
	RemainingSpots int
	TotalSpots     int
}

// IsAvailable returns true if the slot can still be booked
func (s *TimeSlot) IsAvailable() bool {
	return s.RemainingSpots > 0
}

// IsFull returns true if the slot has no remaining spots
func (s *TimeSlot) IsFull() bool {
	return s.RemainingSpots <= 0
}

// CalendarDay represents the derived booking view of one date:
// schedule templates and existing bookings combined into slots with capacity
// Ephemeral: recomputed on every calendar query, never persisted
type CalendarDay struct {
	Date            time.Time
	IsPast          bool
	IsToday         bool
	IsBeyondHorizon bool
	HasSchedule     bool
	IsFullyBooked   bool

	// HasAnomaly поднимается, когда фактическое число бронирований превышает
	// вместимость слота (ручные правки данных); вместимость при этом
	// обрезается до нуля, а день помечается для внимания оператора
	HasAnomaly bool

	Slots []TimeSlot
}

// AvailableSlots returns the number of slots that can still be booked
func (d *CalendarDay) AvailableSlots() int {
	count := 0
	for i := range d.Slots {
		if d.Slots[i].IsAvailable() {
			count++
		}
	}
	return count
}

// IsBookable returns true if at least one slot of the day accepts bookings
func (d *CalendarDay) IsBookable() bool {
	return !d.IsPast && !d.IsBeyondHorizon && d.AvailableSlots() > 0
}

// BookingHorizonEnd возвращает последний день, на который разрешено бронирование,
// для переданного "сегодня"
func BookingHorizonEnd(today time.Time) time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return day.AddDate(0, BookingHorizonMonths, 0)
}
