package update_template

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
	msgInvalidTemplateID  = "некорректный ID шаблона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "шаблон расписания не найден"
	msgForbidden          = "доступ запрещен"
	msgAlreadyExists      = "шаблон расписания с такими параметрами уже существует"
	msgInvalidData        = "некорректные данные шаблона"
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

// Handle PUT /api/v1/templates/{templateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем templateId из URL
	vars := mux.Vars(r)
	templateIDStr := vars["templateId"]

	templateID, err := strconv.ParseInt(templateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /templates/{id} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /templates/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /templates/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем шаблон (сервис сам проверит права администратора)
	result, err := h.service.Update(r.Context(), templateID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrTemplateNotFound):
			h.logger.Warn("PUT /templates/{id} - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, templates.ErrAccessDenied):
			h.logger.Warn("PUT /templates/{id} - Access denied: template_id=%d, user_id=%d",
				templateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, templates.ErrTemplateAlreadyExists):
			h.logger.Warn("PUT /templates/{id} - Template conflict: template_id=%d", templateID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyExists)

		case errors.Is(err, templates.ErrInvalidInput):
			h.logger.Warn("PUT /templates/{id} - Invalid data: template_id=%d, error=%v", templateID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /templates/{id} - Failed to update template: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /templates/{id} - Template updated successfully: template_id=%d", templateID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
