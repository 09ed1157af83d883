package create_booking

import (
	"context"
	"time"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	"github.com/lessonhub/LMS-BookingService/internal/integrations/coreservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.LessonBooking) (*domain.LessonBooking, error)
	GetByOrganizationWithFilter(ctx context.Context, filter domain.OrganizationBookingsFilter) ([]*domain.LessonBooking, error)
}

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	GetByOrganization(ctx context.Context, organizationID int64, courseType *string, isTrial *bool) ([]*domain.ScheduleTemplate, error)
}

// CoreServiceClient интерфейс клиента основного сервиса платформы
// (ученики и организации живут там)
type CoreServiceClient interface {
	GetStudent(ctx context.Context, studentID int64) (*coreservice.Student, error)
	GetOrganization(ctx context.Context, organizationID int64) (*coreservice.Organization, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
