package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lessonhub/LMS-BookingService/internal/api/handlers"
	getCalendar "github.com/lessonhub/LMS-BookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidOrgID      = "некорректный ID организации"
	msgMissingCourseType = "тип курса обязателен"
	msgMissingDates      = "параметры startDate и endDate обязательны"
	msgInvalidParams     = "некорректные параметры запроса, даты ожидаются в формате YYYY-MM-DD"
	msgInvalidRange      = "некорректный диапазон дат"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/organizations/{organizationId}/calendar
// Query params: courseType (required), startDate, endDate (required, YYYY-MM-DD),
// isTrial (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем organizationId из URL
	orgIDStr := vars["organizationId"]
	orgID, err := strconv.ParseInt(orgIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/calendar - Invalid organization ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	// Извлекаем query параметры
	courseType := r.URL.Query().Get("courseType")
	if courseType == "" {
		h.logger.Warn("GET /organizations/{id}/calendar - Missing course type")
		handlers.RespondBadRequest(w, msgMissingCourseType)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /organizations/{id}/calendar - Missing date range")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	isTrialStr := r.URL.Query().Get("isTrial")

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(orgID, courseType, isTrialStr, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidRange):
			h.logger.Warn("GET /organizations/{id}/calendar - Invalid range: org_id=%d, start=%s, end=%s",
				orgID, startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /organizations/{id}/calendar - Invalid input: org_id=%d", orgID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /organizations/{id}/calendar - Failed to build calendar: org_id=%d, error=%v",
				orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /organizations/{id}/calendar - Calendar built successfully: org_id=%d, days_count=%d",
		orgID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
