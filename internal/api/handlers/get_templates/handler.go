package get_templates

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lessonhub/LMS-BookingService/internal/api/handlers"
	"github.com/lessonhub/LMS-BookingService/internal/service/templates/models"
)

const (
	msgInvalidOrgID  = "некорректный ID организации"
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/organizations/{organizationId}/templates
// Query params: courseType, isTrial (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем organizationId из URL
	vars := mux.Vars(r)
	orgIDStr := vars["organizationId"]

	orgID, err := strconv.ParseInt(orgIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/templates - Invalid organization ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	// Опциональные фильтры
	req := &models.ListTemplatesRequest{OrganizationID: orgID}

	if courseType := r.URL.Query().Get("courseType"); courseType != "" {
		req.CourseType = &courseType
	}

	if isTrialStr := r.URL.Query().Get("isTrial"); isTrialStr != "" {
		isTrial, err := strconv.ParseBool(isTrialStr)
		if err != nil {
			h.logger.Warn("GET /organizations/{id}/templates - Invalid isTrial: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.IsTrial = &isTrial
	}

	// Получаем шаблоны расписания
	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /organizations/{id}/templates - Failed to get templates: org_id=%d, error=%v",
			orgID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /organizations/{id}/templates - Templates retrieved successfully: org_id=%d, count=%d",
		orgID, len(result.Templates))
	handlers.RespondJSON(w, http.StatusOK, result.Templates)
}
