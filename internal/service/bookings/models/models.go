package models

import (
	"errors"
	"time"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetStudentBookingsRequest запрос на получение бронирований ученика
type GetStudentBookingsRequest struct {
	UserID    int64   `json:"userId"`
	StudentID int64   `json:"studentId"`
	Status    *string `json:"status,omitempty"`
}

// GetOrganizationBookingsRequest запрос на получение бронирований организации
type GetOrganizationBookingsRequest struct {
	UserID          int64      `json:"userId"`
	OrganizationID  int64      `json:"organizationId"`
	TeacherID       *int64     `json:"teacherId,omitempty"`       // Фильтр по преподавателю (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	CourseType      *string    `json:"courseType,omitempty"`      // Фильтр по типу курса (опционально)
	IsTrial         *bool      `json:"isTrial,omitempty"`         // Фильтр по пробным урокам (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetOrganizationBookingsRequest) ToDomainFilter() (domain.OrganizationBookingsFilter, error) {
	filter := domain.OrganizationBookingsFilter{
		OrganizationID:  r.OrganizationID,
		TeacherID:       r.TeacherID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		CourseType:      r.CourseType,
		IsTrial:         r.IsTrial,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64  `json:"id"`
	Ref            string `json:"ref"`
	StudentID      int64  `json:"studentId"`
	OrganizationID int64  `json:"organizationId"`
	TeacherID      int64  `json:"teacherId"`
	LessonDate     string `json:"lessonDate"` // "2025-10-15"
	StartTime      string `json:"startTime"`  // "10:00"
	EndTime        string `json:"endTime"`    // "11:00"
	CourseType     string `json:"courseType"`
	IsTrial        bool   `json:"isTrial"`
	Status         string `json:"status"`

	// Денормализованные данные
	StudentName *string `json:"studentName,omitempty"`
	Notes       *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.LessonBooking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Ref:                b.Ref.String(),
		StudentID:          b.StudentID,
		OrganizationID:     b.OrganizationID,
		TeacherID:          b.TeacherID,
		LessonDate:         b.LessonDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		CourseType:         b.CourseType,
		IsTrial:            b.IsTrial,
		Status:             string(b.Status),
		StudentName:        b.StudentName,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.LessonBooking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	// Валидируем статус
	validStatuses := []domain.BookingStatus{
		domain.StatusScheduled,
		domain.StatusCompleted,
		domain.StatusCancelledByParent,
		domain.StatusCancelledByAdmin,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
