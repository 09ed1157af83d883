package create_booking

import (
	"errors"
	"net/http"

	"github.com/lessonhub/LMS-BookingService/internal/api/handlers"
	createBooking "github.com/lessonhub/LMS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateFormat    = "некорректный формат даты урока, ожидается YYYY-MM-DD"
	msgSlotUnavailable      = "выбранный временной слот занят"
	msgStudentNotFound      = "ученик не найден"
	msgOrganizationNotFound = "организация не найдена"
	msgInvalidDate          = "дата урока уже прошла"
	msgDateBeyondHorizon    = "дата урока дальше горизонта бронирования"
	msgInvalidTimeSlot      = "на выбранные дату и время нет занятий"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: student_id=%d, org_id=%d, date=%s, time=%s",
				req.StudentID, req.OrganizationID, req.LessonDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrStudentNotFound):
			h.logger.Warn("POST /bookings - Student not found: student_id=%d", req.StudentID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, createBooking.ErrOrganizationNotFound):
			h.logger.Warn("POST /bookings - Organization not found: org_id=%d", req.OrganizationID)
			handlers.RespondNotFound(w, msgOrganizationNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Lesson date in the past: student_id=%d, date=%s",
				req.StudentID, req.LessonDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateBeyondHorizon):
			h.logger.Warn("POST /bookings - Date beyond horizon: student_id=%d, date=%s",
				req.StudentID, req.LessonDate)
			handlers.RespondBadRequest(w, msgDateBeyondHorizon)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - No schedule for slot: org_id=%d, date=%s, time=%s",
				req.OrganizationID, req.LessonDate, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: student_id=%d, org_id=%d, error=%v",
				req.StudentID, req.OrganizationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: student_id=%d, org_id=%d, error=%v",
				req.StudentID, req.OrganizationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, ref=%s, student_id=%d, org_id=%d",
		result.ID, result.Ref, req.StudentID, req.OrganizationID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
