package get_calendar

import (
	"context"
	"fmt"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	"github.com/lessonhub/LMS-BookingService/pkg/ptr"
)

// UseCase use case получения календаря доступных слотов
// Один запрос - один консистентный снапшот: шаблоны и бронирования диапазона
// читаются по одному разу, все дни считаются от этих данных
type UseCase struct {
	bookingRepo  BookingRepository
	templateRepo TemplateRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	templateRepo TemplateRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		templateRepo: templateRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: org=%d, course=%s, trial=%t, range=%s..%s",
		req.OrganizationID, req.CourseType, req.IsTrial,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Перечисляем дни диапазона с флагами прошлое/сегодня/за горизонтом
	days := enumerateDays(req.StartDate, req.EndDate, now)

	// 4. Получаем шаблоны расписания организации (один запрос на весь диапазон)
	templates, err := uc.templateRepo.GetByOrganization(ctx, req.OrganizationID, ptr.Ptr(req.CourseType), ptr.Ptr(req.IsTrial))
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get templates: %v", err)
		return nil, fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
	}

	// 5. Получаем бронирования диапазона (один запрос, только активные)
	filter := domain.OrganizationBookingsFilter{
		OrganizationID:  req.OrganizationID,
		StartDate:       ptr.Ptr(req.StartDate),
		EndDate:         ptr.Ptr(req.EndDate),
		CourseType:      ptr.Ptr(req.CourseType),
		IsTrial:         ptr.Ptr(req.IsTrial),
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByOrganizationWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	byDate := groupBookingsByDate(bookings)

	// 6. Собираем слоты и вместимость для каждого бронируемого дня
	for i := range days {
		day := &days[i]

		// Прошлые дни и дни за горизонтом слотов не получают
		if day.IsPast || day.IsBeyondHorizon {
			continue
		}

		slots, anomaly := buildDaySlots(day.Date, templates, byDate[dateKey(day.Date)])

		day.Slots = slots
		day.HasSchedule = len(slots) > 0
		day.IsFullyBooked = len(slots) == 0 || day.AvailableSlots() == 0
		day.HasAnomaly = anomaly

		if anomaly {
			uc.logger.Warn("GetCalendar: capacity anomaly on %s, org=%d: booked count exceeds configured capacity",
				dateKey(day.Date), req.OrganizationID)
		}
	}

	uc.logger.Info("GetCalendar: built %d days for org=%d, course=%s",
		len(days), req.OrganizationID, req.CourseType)

	return &Response{
		OrganizationID: req.OrganizationID,
		CourseType:     req.CourseType,
		IsTrial:        req.IsTrial,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Days:           days,
	}, nil
}
