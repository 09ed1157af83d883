package create_booking

import (
	"time"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	createBooking "github.com/lessonhub/LMS-BookingService/internal/usecase/create_booking"
	"github.com/lessonhub/LMS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StudentID      int64   `json:"studentId" validate:"required,gt=0"`
	OrganizationID int64   `json:"organizationId" validate:"required,gt=0"`
	CourseType     string  `json:"courseType" validate:"required,max=64"`
	IsTrial        bool    `json:"isTrial"`
	LessonDate     string  `json:"lessonDate" validate:"required"` // "2025-10-15"
	StartTime      string  `json:"startTime" validate:"required"`  // "10:00"
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	Ref            string  `json:"ref"`
	StudentID      int64   `json:"studentId"`
	OrganizationID int64   `json:"organizationId"`
	TeacherID      int64   `json:"teacherId"`
	LessonDate     string  `json:"lessonDate"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	CourseType     string  `json:"courseType"`
	IsTrial        bool    `json:"isTrial"`
	Status         string  `json:"status"`
	StudentName    *string `json:"studentName,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	lessonDate, err := time.Parse(domain.DateFormat, r.LessonDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		StudentID:      r.StudentID,
		OrganizationID: r.OrganizationID,
		CourseType:     r.CourseType,
		IsTrial:        r.IsTrial,
		LessonDate:     lessonDate,
		StartTime:      startTime,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		Ref:            resp.Ref.String(),
		StudentID:      resp.StudentID,
		OrganizationID: resp.OrganizationID,
		TeacherID:      resp.TeacherID,
		LessonDate:     resp.LessonDate.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		CourseType:     resp.CourseType,
		IsTrial:        resp.IsTrial,
		Status:         resp.Status,
		StudentName:    resp.StudentName,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
