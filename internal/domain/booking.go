package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lessonhub/LMS-BookingService/pkg/types"
)

// BookingStatus represents the status of a lesson booking
type BookingStatus string

const (
	StatusScheduled         BookingStatus = "scheduled"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByParent BookingStatus = "cancelled_by_parent"
	StatusCancelledByAdmin  BookingStatus = "cancelled_by_admin"
	StatusNoShow            BookingStatus = "no_show"
)

// LessonBooking represents one confirmed lesson occupying one date + time slot
// for one student within an organization
type LessonBooking struct {
	ID             int64
	Ref            uuid.UUID // публичный идентификатор для внешних систем
	StudentID      int64
	OrganizationID int64
	TeacherID      int64
	LessonDate     time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	CourseType     string
	IsTrial        bool
	Status         BookingStatus

	// Denormalized for history
	StudentName *string
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies capacity in its slot
func (b *LessonBooking) IsActive() bool {
	return b.Status != StatusCancelledByParent &&
		b.Status != StatusCancelledByAdmin &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *LessonBooking) CanBeCancelled() bool {
	return b.Status == StatusScheduled
}

// IsCancelled returns true if the booking has been cancelled
func (b *LessonBooking) IsCancelled() bool {
	return b.Status == StatusCancelledByParent || b.Status == StatusCancelledByAdmin
}

// OccupiesSlot returns true if the booking counts against the given slot
// of its lesson date
func (b *LessonBooking) OccupiesSlot(teacherID int64, startTime types.TimeString) bool {
	return b.IsActive() && b.TeacherID == teacherID && b.StartTime == startTime
}

// OrganizationBookingsFilter фильтр для выборки бронирований организации
type OrganizationBookingsFilter struct {
	OrganizationID  int64          // Обязательный параметр
	TeacherID       *int64         // Фильтр по преподавателю (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	CourseType      *string        // Фильтр по типу курса (опционально)
	IsTrial         *bool          // Фильтр по пробным урокам (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}
