package get_calendar

import (
	"time"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	"github.com/lessonhub/LMS-BookingService/pkg/types"
)

// enumerateDays перечисляет все дни диапазона по порядку и проставляет флаги
// прошлое/сегодня/за горизонтом относительно now
// Чистая календарная арифметика без обращений к хранилищу: одинаковые
// (start, end, now) всегда дают одинаковую последовательность
func enumerateDays(start, end, now time.Time) []domain.CalendarDay {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)
	today := truncateToDay(now)
	horizonEnd := domain.BookingHorizonEnd(now)

	days := make([]domain.CalendarDay, 0, int(endDay.Sub(startDay).Hours()/24)+1)

	for date := startDay; !date.After(endDay); date = date.AddDate(0, 0, 1) {
		days = append(days, domain.CalendarDay{
			Date:    date,
			IsPast:  date.Before(today),
			IsToday: date.Equal(today),
			// Дни за границей горизонта помечаются по одному:
			// месяц, пересекающий горизонт, блокируется только частично
			IsBeyondHorizon: date.After(horizonEnd),
		})
	}

	return days
}

// buildDaySlots собирает слоты дня из шаблонов расписания и считает
// оставшуюся вместимость по существующим бронированиям
// Возвращает слоты и флаг аномалии: аномалия - это когда активных бронирований
// в слоте больше, чем настроенная вместимость (ручные правки данных);
// вместимость в этом случае обрезается до нуля
func buildDaySlots(
	date time.Time,
	templates []*domain.ScheduleTemplate,
	bookings []*domain.LessonBooking,
) ([]domain.TimeSlot, bool) {
	slots := make([]domain.TimeSlot, 0)
	anomaly := false

	for _, tmpl := range templates {
		if !tmpl.AppliesTo(date) {
			continue
		}

		booked := countSlotBookings(bookings, tmpl.TeacherID, tmpl.StartTime)

		remaining := tmpl.MaxCapacity - booked
		if remaining < 0 {
			remaining = 0
			anomaly = true
		}

		slots = append(slots, domain.TimeSlot{
			StartTime:      tmpl.StartTime,
			EndTime:        tmpl.EndTime,
			TeacherID:      tmpl.TeacherID,
			RemainingSpots: remaining,
			TotalSpots:     tmpl.MaxCapacity,
		})
	}

	return slots, anomaly
}

// countSlotBookings подсчитывает активные бронирования, занимающие слот
// (преподаватель + время начала); отменённые и no-show не считаются
func countSlotBookings(bookings []*domain.LessonBooking, teacherID int64, startTime types.TimeString) int {
	count := 0
	for _, b := range bookings {
		if b.OccupiesSlot(teacherID, startTime) {
			count++
		}
	}
	return count
}

// groupBookingsByDate раскладывает бронирования по датам (ключ YYYY-MM-DD)
func groupBookingsByDate(bookings []*domain.LessonBooking) map[string][]*domain.LessonBooking {
	byDate := make(map[string][]*domain.LessonBooking, len(bookings))
	for _, b := range bookings {
		key := dateKey(b.LessonDate)
		byDate[key] = append(byDate[key], b)
	}
	return byDate
}

// dateKey возвращает ключ даты без времени
func dateKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
