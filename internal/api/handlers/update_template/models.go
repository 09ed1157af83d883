package update_template

import (
	"github.com/lessonhub/LMS-BookingService/internal/service/templates/models"
)

// UpdateTemplateRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateTemplateRequest struct {
	Weekday     *int    `json:"weekday,omitempty" validate:"omitempty,min=0,max=6"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	CourseType  *string `json:"courseType,omitempty" validate:"omitempty,max=64"`
	IsTrial     *bool   `json:"isTrial,omitempty"`
	MaxCapacity *int    `json:"maxCapacity,omitempty" validate:"omitempty,gt=0"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateTemplateRequest) ToServiceRequest(userID int64) *models.UpdateTemplateRequest {
	return &models.UpdateTemplateRequest{
		UserID:      userID,
		Weekday:     r.Weekday,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		CourseType:  r.CourseType,
		IsTrial:     r.IsTrial,
		MaxCapacity: r.MaxCapacity,
	}
}
