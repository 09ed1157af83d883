package get_student_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lessonhub/LMS-BookingService/internal/api/handlers"
	"github.com/lessonhub/LMS-BookingService/internal/api/middleware"
	"github.com/lessonhub/LMS-BookingService/internal/service/bookings"
	"github.com/lessonhub/LMS-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidStudentID = "некорректный ID ученика"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidStatus    = "некорректный статус бронирования"
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

// Handle GET /api/v1/students/{studentId}/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем studentId из URL
	vars := mux.Vars(r)
	studentIDStr := vars["studentId"]

	studentID, err := strconv.ParseInt(studentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /students/{studentId}/bookings - Invalid student ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /students/{studentId}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	// Формируем запрос к сервису
	serviceReq := &models.GetStudentBookingsRequest{
		UserID:    userID,
		StudentID: studentID,
		Status:    statusPtr,
	}

	// Получаем историю бронирований ученика
	result, err := h.service.GetStudentBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /students/{studentId}/bookings - Invalid status: student_id=%d, status=%s",
				studentID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}

		h.logger.Error("GET /students/{studentId}/bookings - Failed to get bookings: student_id=%d, error=%v",
			studentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /students/{studentId}/bookings - Bookings retrieved successfully: student_id=%d, count=%d",
		studentID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
