package bookings

import (
	"context"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	"github.com/lessonhub/LMS-BookingService/internal/integrations/coreservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.LessonBooking, error)
	GetByStudentID(ctx context.Context, studentID int64, status *domain.BookingStatus) ([]*domain.LessonBooking, error)
	GetByOrganizationWithFilter(ctx context.Context, filter domain.OrganizationBookingsFilter) ([]*domain.LessonBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
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
