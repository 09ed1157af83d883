package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	coreClient "github.com/lessonhub/LMS-BookingService/internal/integrations/coreservice"
	"github.com/lessonhub/LMS-BookingService/pkg/ptr"
)

// UseCase use case создания бронирования урока
type UseCase struct {
	bookingRepo  BookingRepository
	templateRepo TemplateRepository
	coreClient   CoreServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	templateRepo TemplateRepository,
	coreClient CoreServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		templateRepo: templateRepo,
		coreClient:   coreClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и вставка идут в одной сериализуемой транзакции
// с блокировкой строк дня: из двух конкурентных попыток занять последнее
// место пройдёт ровно одна, вторая получит ErrSlotUnavailable
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: student=%d, org=%d, course=%s, date=%s, time=%s",
		req.StudentID, req.OrganizationID, req.CourseType,
		req.LessonDate.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных - до любых обращений к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты: не прошлое и не дальше горизонта
	if err := validateDate(req.LessonDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем организацию
	if _, err := uc.coreClient.GetOrganization(ctx, req.OrganizationID); err != nil {
		if errors.Is(err, coreClient.ErrOrganizationNotFound) {
			uc.logger.Warn("CreateBooking: organization id=%d not found", req.OrganizationID)
			return nil, ErrOrganizationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get organization id=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	// 5. Получаем ученика (имя денормализуется в бронирование)
	student, err := uc.coreClient.GetStudent(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, coreClient.ErrStudentNotFound) {
			uc.logger.Warn("CreateBooking: student id=%d not found", req.StudentID)
			return nil, ErrStudentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get student id=%d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: failed to get student: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.LessonBooking

	// 6. Проверка вместимости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем шаблоны расписания
		templates, err := uc.templateRepo.GetByOrganization(txCtx, req.OrganizationID, ptr.Ptr(req.CourseType), ptr.Ptr(req.IsTrial))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get templates: %v", err)
			return fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
		}

		// 6.2. Ищем шаблон, порождающий запрошенный слот
		tmpl := findTemplateForSlot(templates, req.LessonDate, req.StartTime)
		if tmpl == nil {
			uc.logger.Warn("CreateBooking: no schedule template for org=%d, date=%s, time=%s",
				req.OrganizationID, req.LessonDate.Format(domain.DateFormat), req.StartTime)
			return ErrInvalidTimeSlot
		}

		// 6.3. Получаем активные бронирования дня с блокировкой (FOR UPDATE)
		filter := domain.OrganizationBookingsFilter{
			OrganizationID:  req.OrganizationID,
			StartDate:       ptr.Ptr(req.LessonDate),
			EndDate:         ptr.Ptr(req.LessonDate),
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByOrganizationWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.4. Проверяем вместимость слота на момент записи
		booked := countSlotBookings(bookings, tmpl)
		if booked >= tmpl.MaxCapacity {
			uc.logger.Warn("CreateBooking: slot not available, %d/%d spots taken",
				booked, tmpl.MaxCapacity)
			return ErrSlotUnavailable
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d spots taken", booked, tmpl.MaxCapacity)

		// 6.5. Создаем бронирование с денормализацией данных ученика
		booking := &domain.LessonBooking{
			Ref:            uuid.New(),
			StudentID:      req.StudentID,
			OrganizationID: req.OrganizationID,
			TeacherID:      tmpl.TeacherID,
			LessonDate:     req.LessonDate,
			StartTime:      tmpl.StartTime,
			EndTime:        tmpl.EndTime,
			CourseType:     req.CourseType,
			IsTrial:        req.IsTrial,
			Status:         domain.StatusScheduled,
			StudentName:    &student.Name,
			Notes:          req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d ref=%s", result.ID, result.Ref)

	return &Response{
		ID:             result.ID,
		Ref:            result.Ref,
		StudentID:      result.StudentID,
		OrganizationID: result.OrganizationID,
		TeacherID:      result.TeacherID,
		LessonDate:     result.LessonDate,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		CourseType:     result.CourseType,
		IsTrial:        result.IsTrial,
		Status:         string(result.Status),
		StudentName:    result.StudentName,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
