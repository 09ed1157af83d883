package models

import (
	"time"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	"github.com/lessonhub/LMS-BookingService/pkg/types"
)

// Request модели

// CreateTemplateRequest запрос на создание шаблона расписания
type CreateTemplateRequest struct {
	UserID         int64  `json:"userId"`
	OrganizationID int64  `json:"organizationId"`
	TeacherID      int64  `json:"teacherId"`
	Weekday        int    `json:"weekday"`   // 0 = воскресенье ... 6 = суббота
	StartTime      string `json:"startTime"` // "10:00"
	EndTime        string `json:"endTime"`   // "11:00"
	CourseType     string `json:"courseType"`
	IsTrial        bool   `json:"isTrial"`
	MaxCapacity    int    `json:"maxCapacity"`
}

// UpdateTemplateRequest запрос на обновление шаблона расписания
// Все поля опциональны - обновляются только переданные значения
type UpdateTemplateRequest struct {
	UserID      int64   `json:"userId"`
	Weekday     *int    `json:"weekday,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	CourseType  *string `json:"courseType,omitempty"`
	IsTrial     *bool   `json:"isTrial,omitempty"`
	MaxCapacity *int    `json:"maxCapacity,omitempty"`
}

// ListTemplatesRequest запрос на получение шаблонов организации
type ListTemplatesRequest struct {
	OrganizationID int64   `json:"organizationId"`
	CourseType     *string `json:"courseType,omitempty"`
	IsTrial        *bool   `json:"isTrial,omitempty"`
}

// Response модели

// TemplateResponse ответ с данными шаблона расписания
type TemplateResponse struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organizationId"`
	TeacherID      int64     `json:"teacherId"`
	Weekday        int       `json:"weekday"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	CourseType     string    `json:"courseType"`
	IsTrial        bool      `json:"isTrial"`
	MaxCapacity    int       `json:"maxCapacity"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TemplateListResponse ответ со списком шаблонов
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// Методы конвертации

// FromDomainTemplate конвертирует domain модель в DTO
func FromDomainTemplate(t *domain.ScheduleTemplate) *TemplateResponse {
	if t == nil {
		return nil
	}

	return &TemplateResponse{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		TeacherID:      t.TeacherID,
		Weekday:        int(t.Weekday),
		StartTime:      t.StartTime.String(),
		EndTime:        t.EndTime.String(),
		CourseType:     t.CourseType,
		IsTrial:        t.IsTrial,
		MaxCapacity:    t.MaxCapacity,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// FromDomainTemplateList конвертирует список domain моделей в DTO
func FromDomainTemplateList(templates []*domain.ScheduleTemplate) *TemplateListResponse {
	if templates == nil {
		return &TemplateListResponse{
			Templates: []TemplateResponse{},
		}
	}

	resp := &TemplateListResponse{
		Templates: make([]TemplateResponse, len(templates)),
	}

	for i, tmpl := range templates {
		if tmplResp := FromDomainTemplate(tmpl); tmplResp != nil {
			resp.Templates[i] = *tmplResp
		}
	}

	return resp
}

// ToDomainTemplate конвертирует CreateTemplateRequest в domain модель
func (r *CreateTemplateRequest) ToDomainTemplate() *domain.ScheduleTemplate {
	return &domain.ScheduleTemplate{
		OrganizationID: r.OrganizationID,
		TeacherID:      r.TeacherID,
		Weekday:        time.Weekday(r.Weekday),
		StartTime:      types.TimeString(r.StartTime),
		EndTime:        types.TimeString(r.EndTime),
		CourseType:     r.CourseType,
		IsTrial:        r.IsTrial,
		MaxCapacity:    r.MaxCapacity,
	}
}
