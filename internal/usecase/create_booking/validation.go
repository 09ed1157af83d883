package create_booking

import (
	"fmt"
	"time"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	"github.com/lessonhub/LMS-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Выполняется до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.StudentID <= 0 {
		return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	if req.OrganizationID <= 0 {
		return fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}

	if req.CourseType == "" {
		return fmt.Errorf("%w: courseType is required", ErrInvalidInput)
	}
	if len(req.CourseType) > domain.MaxCourseTypeLength {
		return fmt.Errorf("%w: courseType is too long", ErrInvalidInput)
	}

	if req.LessonDate.IsZero() {
		return fmt.Errorf("%w: lessonDate is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата урока бронируема:
// не в прошлом и не дальше горизонта бронирования
func validateDate(lessonDate time.Time, now time.Time) error {
	if isDateInPast(lessonDate, now) {
		return ErrInvalidDate
	}

	lessonDay := time.Date(lessonDate.Year(), lessonDate.Month(), lessonDate.Day(), 0, 0, 0, 0, lessonDate.Location())
	if lessonDay.After(domain.BookingHorizonEnd(now)) {
		return fmt.Errorf("%w: can only book %d months in advance", ErrDateBeyondHorizon, domain.BookingHorizonMonths)
	}

	return nil
}

// findTemplateForSlot ищет шаблон расписания, порождающий запрошенный слот
// Шаблоны уже отфильтрованы по организации, типу курса и флагу пробного урока
func findTemplateForSlot(templates []*domain.ScheduleTemplate, lessonDate time.Time, startTime types.TimeString) *domain.ScheduleTemplate {
	for _, tmpl := range templates {
		if tmpl.AppliesTo(lessonDate) && tmpl.StartTime == startTime {
			return tmpl
		}
	}
	return nil
}

// countSlotBookings подсчитывает активные бронирования, занимающие слот шаблона
func countSlotBookings(bookings []*domain.LessonBooking, tmpl *domain.ScheduleTemplate) int {
	count := 0
	for _, b := range bookings {
		if b.OccupiesSlot(tmpl.TeacherID, tmpl.StartTime) {
			count++
		}
	}
	return count
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
