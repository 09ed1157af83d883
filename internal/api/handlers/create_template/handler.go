package create_template

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
	msgInvalidOrgID       = "некорректный ID организации"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgOrgNotFound        = "организация не найдена"
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

// Handle POST /api/v1/organizations/{organizationId}/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем organizationId из URL
	vars := mux.Vars(r)
	orgIDStr := vars["organizationId"]

	orgID, err := strconv.ParseInt(orgIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /organizations/{id}/templates - Invalid organization ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /organizations/{id}/templates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CreateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /organizations/{id}/templates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем шаблон (сервис сам проверит права администратора)
	result, err := h.service.Create(r.Context(), req.ToServiceRequest(orgID, userID))
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrOrganizationNotFound):
			h.logger.Warn("POST /organizations/{id}/templates - Organization not found: org_id=%d", orgID)
			handlers.RespondNotFound(w, msgOrgNotFound)

		case errors.Is(err, templates.ErrAccessDenied):
			h.logger.Warn("POST /organizations/{id}/templates - Access denied: org_id=%d, user_id=%d",
				orgID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, templates.ErrTemplateAlreadyExists):
			h.logger.Warn("POST /organizations/{id}/templates - Template already exists: org_id=%d, teacher_id=%d, weekday=%d, time=%s",
				orgID, req.TeacherID, req.Weekday, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyExists)

		case errors.Is(err, templates.ErrInvalidInput):
			h.logger.Warn("POST /organizations/{id}/templates - Invalid data: org_id=%d, error=%v", orgID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /organizations/{id}/templates - Failed to create template: org_id=%d, error=%v",
				orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /organizations/{id}/templates - Template created successfully: template_id=%d, org_id=%d",
		result.ID, orgID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
