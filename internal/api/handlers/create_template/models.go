package create_template

import (
	"github.com/lessonhub/LMS-BookingService/internal/service/templates/models"
)

// CreateTemplateRequest HTTP request model
type CreateTemplateRequest struct {
	TeacherID   int64  `json:"teacherId" validate:"required,gt=0"`
	Weekday     int    `json:"weekday" validate:"min=0,max=6"`
	StartTime   string `json:"startTime" validate:"required"` // "10:00"
	EndTime     string `json:"endTime" validate:"required"`   // "11:00"
	CourseType  string `json:"courseType" validate:"required,max=64"`
	IsTrial     bool   `json:"isTrial"`
	MaxCapacity int    `json:"maxCapacity" validate:"required,gt=0"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateTemplateRequest) ToServiceRequest(organizationID, userID int64) *models.CreateTemplateRequest {
	return &models.CreateTemplateRequest{
		UserID:         userID,
		OrganizationID: organizationID,
		TeacherID:      r.TeacherID,
		Weekday:        r.Weekday,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		CourseType:     r.CourseType,
		IsTrial:        r.IsTrial,
		MaxCapacity:    r.MaxCapacity,
	}
}
