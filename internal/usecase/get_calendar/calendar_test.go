package get_calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEnumerateDays_MonthLengths(t *testing.T) {
	now := date(2025, 1, 1)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{name: "january", start: date(2025, 1, 1), end: date(2025, 1, 31), want: 31},
		{name: "february", start: date(2025, 2, 1), end: date(2025, 2, 28), want: 28},
		{name: "leap february", start: date(2024, 2, 1), end: date(2024, 2, 29), want: 29},
		{name: "april", start: date(2025, 4, 1), end: date(2025, 4, 30), want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := enumerateDays(tt.start, tt.end, now)
			require.Len(t, days, tt.want)

			// Дни идут по порядку без пропусков
			for i, day := range days {
				assert.Equal(t, tt.start.AddDate(0, 0, i), day.Date)
			}
		})
	}
}

func TestEnumerateDays_Flags(t *testing.T) {
	// Сегодня 15 марта 2025, горизонт до 15 мая включительно
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	days := enumerateDays(date(2025, 3, 13), date(2025, 3, 17), now)
	require.Len(t, days, 5)

	assert.True(t, days[0].IsPast)
	assert.True(t, days[1].IsPast)
	assert.True(t, days[2].IsToday)
	assert.False(t, days[2].IsPast)
	assert.False(t, days[3].IsPast)
	assert.False(t, days[3].IsToday)
	assert.False(t, days[4].IsPast)

	for _, day := range days {
		assert.False(t, day.IsBeyondHorizon, "day %s", day.Date)
	}
}

func TestEnumerateDays_HorizonBoundary(t *testing.T) {
	// Горизонт от 15 марта - 15 мая; месяц, пересекающий границу,
	// блокируется только частично
	now := date(2025, 3, 15)

	days := enumerateDays(date(2025, 5, 1), date(2025, 5, 31), now)
	require.Len(t, days, 31)

	for _, day := range days {
		if day.Date.After(date(2025, 5, 15)) {
			assert.True(t, day.IsBeyondHorizon, "day %s must be beyond horizon", day.Date)
		} else {
			assert.False(t, day.IsBeyondHorizon, "day %s must be within horizon", day.Date)
		}
	}
}

func TestEnumerateDays_EntirelyBeyondHorizon(t *testing.T) {
	now := date(2025, 3, 15)

	days := enumerateDays(date(2025, 6, 1), date(2025, 6, 30), now)
	require.Len(t, days, 30)

	for _, day := range days {
		assert.True(t, day.IsBeyondHorizon)
	}
}

func TestBuildDaySlots_FullCapacityWhenNoBookings(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		{ID: 1, TeacherID: 7, Weekday: time.Tuesday, StartTime: "10:00", EndTime: "11:00", MaxCapacity: 2},
	}

	// 4 марта 2025 - вторник
	slots, anomaly := buildDaySlots(date(2025, 3, 4), templates, nil)

	require.Len(t, slots, 1)
	assert.False(t, anomaly)
	assert.Equal(t, 2, slots[0].RemainingSpots)
	assert.Equal(t, 2, slots[0].TotalSpots)
}

func TestBuildDaySlots_SkipsOtherWeekdays(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		{ID: 1, TeacherID: 7, Weekday: time.Tuesday, StartTime: "10:00", EndTime: "11:00", MaxCapacity: 2},
	}

	// 5 марта 2025 - среда
	slots, anomaly := buildDaySlots(date(2025, 3, 5), templates, nil)

	assert.Empty(t, slots)
	assert.False(t, anomaly)
}

func TestBuildDaySlots_CountsOnlyActiveBookings(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		{ID: 1, TeacherID: 7, Weekday: time.Tuesday, StartTime: "10:00", EndTime: "11:00", MaxCapacity: 3},
	}
	bookings := []*domain.LessonBooking{
		{TeacherID: 7, StartTime: "10:00", Status: domain.StatusScheduled},
		{TeacherID: 7, StartTime: "10:00", Status: domain.StatusCancelledByParent},
		{TeacherID: 7, StartTime: "10:00", Status: domain.StatusNoShow},
		// Другое время и другой преподаватель не считаются
		{TeacherID: 7, StartTime: "12:00", Status: domain.StatusScheduled},
		{TeacherID: 9, StartTime: "10:00", Status: domain.StatusScheduled},
	}

	slots, anomaly := buildDaySlots(date(2025, 3, 4), templates, bookings)

	require.Len(t, slots, 1)
	assert.False(t, anomaly)
	assert.Equal(t, 2, slots[0].RemainingSpots)
}

func TestBuildDaySlots_ClampsNegativeCapacityAndFlagsAnomaly(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		{ID: 1, TeacherID: 7, Weekday: time.Tuesday, StartTime: "10:00", EndTime: "11:00", MaxCapacity: 1},
	}
	// Ручные правки данных: бронирований больше, чем вместимость
	bookings := []*domain.LessonBooking{
		{TeacherID: 7, StartTime: "10:00", Status: domain.StatusScheduled},
		{TeacherID: 7, StartTime: "10:00", Status: domain.StatusScheduled},
		{TeacherID: 7, StartTime: "10:00", Status: domain.StatusScheduled},
	}

	slots, anomaly := buildDaySlots(date(2025, 3, 4), templates, bookings)

	require.Len(t, slots, 1)
	assert.True(t, anomaly, "overbooked slot must be flagged, not silently clamped")
	assert.Equal(t, 0, slots[0].RemainingSpots, "capacity must clamp to zero, never negative")
}

func TestBuildDaySlots_NeverExceedsMax(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		{ID: 1, TeacherID: 7, Weekday: time.Tuesday, StartTime: "10:00", EndTime: "11:00", MaxCapacity: 5},
	}
	bookings := []*domain.LessonBooking{
		{TeacherID: 7, StartTime: "10:00", Status: domain.StatusScheduled},
	}

	slots, _ := buildDaySlots(date(2025, 3, 4), templates, bookings)

	require.Len(t, slots, 1)
	assert.LessOrEqual(t, slots[0].RemainingSpots, slots[0].TotalSpots)
	assert.GreaterOrEqual(t, slots[0].RemainingSpots, 0)
}
