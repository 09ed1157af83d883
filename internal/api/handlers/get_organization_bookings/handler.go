package get_organization_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lessonhub/LMS-BookingService/internal/api/handlers"
	"github.com/lessonhub/LMS-BookingService/internal/api/middleware"
	"github.com/lessonhub/LMS-BookingService/internal/service/bookings"
)

const (
	msgInvalidOrgID  = "некорректный ID организации"
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidParams = "некорректные параметры запроса"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/organizations/{organizationId}/bookings
// Query params: teacherId, courseType, isTrial, status, startDate, endDate,
// includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем organizationId из URL
	vars := mux.Vars(r)
	orgIDStr := vars["organizationId"]

	orgID, err := strconv.ParseInt(orgIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/bookings - Invalid organization ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /organizations/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Собираем опциональные query параметры
	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(orgID, userID,
		q.Get("teacherId"), q.Get("courseType"), q.Get("isTrial"),
		q.Get("status"), q.Get("startDate"), q.Get("endDate"), q.Get("includeInactive"))
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования организации (сервис сам проверит права администратора)
	result, err := h.service.GetOrganizationBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /organizations/{id}/bookings - Access denied: org_id=%d, user_id=%d",
				orgID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /organizations/{id}/bookings - Invalid filter: org_id=%d", orgID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /organizations/{id}/bookings - Failed to get bookings: org_id=%d, error=%v",
				orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /organizations/{id}/bookings - Bookings retrieved successfully: org_id=%d, count=%d",
		orgID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
