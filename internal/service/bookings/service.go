package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	bookingRepo "github.com/lessonhub/LMS-BookingService/internal/infra/storage/booking"
	coreClient "github.com/lessonhub/LMS-BookingService/internal/integrations/coreservice"
	"github.com/lessonhub/LMS-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	coreClient  CoreServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	coreClient CoreServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		coreClient:  coreClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - родитель видит только бронирования своего ученика,
// администратор организации видит любые её бронирования
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetStudentBookings получает историю бронирований ученика
// Опционально фильтрует по статусу
func (s *Service) GetStudentBookings(ctx context.Context, req *models.GetStudentBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetStudentBookings: fetching bookings for student=%d, status=%v", req.StudentID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetStudentBookings: invalid status=%s for student=%d", *req.Status, req.StudentID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByStudentID(ctx, req.StudentID, domainStatus)
	if err != nil {
		s.logger.Error("GetStudentBookings: repository error for student=%d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: GetStudentBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStudentBookings: successfully fetched %d bookings for student=%d", len(bookings), req.StudentID)
	return models.FromDomainBookingList(bookings), nil
}

// GetOrganizationBookings получает бронирования организации с гибкой фильтрацией
// Поддерживает фильтрацию по преподавателю, периоду, типу курса, статусу
// и включению неактивных бронирований
// Доступно только администраторам организации
func (s *Service) GetOrganizationBookings(ctx context.Context, req *models.GetOrganizationBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetOrganizationBookings: fetching bookings for org=%d, user=%d", req.OrganizationID, req.UserID)
	if req.TeacherID != nil {
		logMsg += fmt.Sprintf(", teacher=%d", *req.TeacherID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа администратора
	if err := s.checkAdminAccess(ctx, req.OrganizationID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetOrganizationBookings: invalid filter for org=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	bookings, err := s.bookingRepo.GetByOrganizationWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOrganizationBookings: repository error for org=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: GetOrganizationBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOrganizationBookings: successfully fetched %d bookings for org=%d", len(bookings), req.OrganizationID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Родитель может отменить только бронирование своего ученика (cancelled_by_parent)
// Администратор может отменить любое бронирование организации (cancelled_by_admin)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	// Проверяем, относится ли бронирование к ученику пользователя
	if booking.StudentID == req.UserID {
		cancelStatus = domain.StatusCancelledByParent
	} else {
		// Проверяем, является ли пользователь администратором организации
		if err := s.checkAdminAccess(ctx, booking.OrganizationID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByAdmin
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус бронирования (completed, no_show)
// Доступно только администраторам организации
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только администратор организации)
	if err := s.checkAdminAccess(ctx, booking.OrganizationID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Родитель видит бронирование своего ученика, администратор - любое в организации
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.LessonBooking, userID int64) error {
	// Если бронирование принадлежит ученику пользователя - доступ разрешён
	if booking.StudentID == userID {
		return nil
	}

	// Проверяем, является ли пользователь администратором организации
	if err := s.checkAdminAccess(ctx, booking.OrganizationID, userID); err != nil {
		// Ошибка уже залогирована в checkAdminAccess
		return ErrAccessDenied
	}

	return nil
}

// checkAdminAccess проверяет, что пользователь является администратором организации
func (s *Service) checkAdminAccess(ctx context.Context, organizationID int64, userID int64) error {
	// Получаем организацию через CoreService
	org, err := s.coreClient.GetOrganization(ctx, organizationID)
	if err != nil {
		if errors.Is(err, coreClient.ErrOrganizationNotFound) {
			s.logger.Warn("checkAdminAccess: organization id=%d not found", organizationID)
			return ErrOrganizationNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get organization id=%d: %v", organizationID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get organization: %v", ErrInternal, err)
	}

	// Проверяем, что userID в списке администраторов
	for _, adminID := range org.AdminIDs {
		if adminID == userID {
			s.logger.Info("checkAdminAccess: user=%d is admin of org=%d", userID, organizationID)
			return nil
		}
	}

	s.logger.Warn("checkAdminAccess: user=%d is not an admin of org=%d", userID, organizationID)
	return ErrAccessDenied
}
