package get_calendar

import (
	"time"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
)

// Request модель запроса календаря доступных слотов
type Request struct {
	OrganizationID int64     // ID организации
	CourseType     string    // Тип курса
	IsTrial        bool      // Пробные уроки
	StartDate      time.Time // Начало диапазона (без времени)
	EndDate        time.Time // Конец диапазона включительно (без времени)
}

// Response модель ответа с календарём по дням
type Response struct {
	OrganizationID int64
	CourseType     string
	IsTrial        bool
	StartDate      time.Time
	EndDate        time.Time
	Days           []domain.CalendarDay // По дню на каждую дату диапазона, по порядку
}
