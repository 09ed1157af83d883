package templates

import (
	"context"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	"github.com/lessonhub/LMS-BookingService/internal/integrations/coreservice"
)

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	Create(ctx context.Context, tmpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error)
	GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error)
	GetByOrganization(ctx context.Context, organizationID int64, courseType *string, isTrial *bool) ([]*domain.ScheduleTemplate, error)
	Update(ctx context.Context, id int64, tmpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error)
	Delete(ctx context.Context, id int64) error
}

// CoreServiceClient интерфейс клиента основного сервиса платформы
type CoreServiceClient interface {
	GetOrganization(ctx context.Context, organizationID int64) (*coreservice.Organization, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
