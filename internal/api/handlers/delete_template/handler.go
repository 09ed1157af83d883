package delete_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lessonhub/LMS-BookingService/internal/api/handlers"
	"github.com/lessonhub/LMS-BookingService/internal/api/middleware"
	"github.com/lessonhub/LMS-BookingService/internal/service/templates"
)

const (
	msgInvalidTemplateID = "некорректный ID шаблона"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "шаблон расписания не найден"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service TemplateService
	logger  Logger
}

func NewHandler(service TemplateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/templates/{templateId}
// Существующие бронирования остаются, слот перестает предлагаться в календаре
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем templateId из URL
	vars := mux.Vars(r)
	templateIDStr := vars["templateId"]

	templateID, err := strconv.ParseInt(templateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /templates/{id} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /templates/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем шаблон (сервис сам проверит права администратора)
	if err := h.service.Delete(r.Context(), templateID, userID); err != nil {
		switch {
		case errors.Is(err, templates.ErrTemplateNotFound):
			h.logger.Warn("DELETE /templates/{id} - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, templates.ErrAccessDenied):
			h.logger.Warn("DELETE /templates/{id} - Access denied: template_id=%d, user_id=%d",
				templateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /templates/{id} - Failed to delete template: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /templates/{id} - Template deleted successfully: template_id=%d", templateID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
