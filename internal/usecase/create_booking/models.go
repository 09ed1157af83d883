package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/lessonhub/LMS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	StudentID      int64            // ID ученика
	OrganizationID int64            // ID организации
	CourseType     string           // Тип курса
	IsTrial        bool             // Пробный урок
	LessonDate     time.Time        // Дата урока (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64            // ID созданного бронирования
	Ref            uuid.UUID        // Публичный идентификатор
	StudentID      int64            // ID ученика
	OrganizationID int64            // ID организации
	TeacherID      int64            // ID преподавателя (из шаблона)
	LessonDate     time.Time        // Дата урока
	StartTime      types.TimeString // Время начала
	EndTime        types.TimeString // Время окончания
	CourseType     string           // Тип курса
	IsTrial        bool             // Пробный урок
	Status         string           // Статус бронирования

	// Денормализованные данные
	StudentName *string // Имя ученика
	Notes       *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
