package templates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	templateRepo "github.com/lessonhub/LMS-BookingService/internal/infra/storage/template"
	coreClient "github.com/lessonhub/LMS-BookingService/internal/integrations/coreservice"
	"github.com/lessonhub/LMS-BookingService/internal/service/templates/models"
	"github.com/lessonhub/LMS-BookingService/pkg/types"
)

// Service сервис для работы с шаблонами расписания
type Service struct {
	templateRepo TemplateRepository
	coreClient   CoreServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(
	templateRepo TemplateRepository,
	coreClient CoreServiceClient,
	logger Logger,
) *Service {
	return &Service{
		templateRepo: templateRepo,
		coreClient:   coreClient,
		logger:       logger,
	}
}

// Create создает новый шаблон расписания
// Доступно только администраторам организации
func (s *Service) Create(ctx context.Context, req *models.CreateTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("Create: creating template for org=%d, teacher=%d, weekday=%d, time=%s by user=%d",
		req.OrganizationID, req.TeacherID, req.Weekday, req.StartTime, req.UserID)

	// 1. Валидируем входные данные
	if err := s.validateTemplateData(req.Weekday, req.StartTime, req.EndTime, req.CourseType, req.MaxCapacity); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if req.TeacherID <= 0 {
		s.logger.Warn("Create: invalid teacher id=%d", req.TeacherID)
		return nil, fmt.Errorf("%w: teacher id must be positive", ErrInvalidInput)
	}

	// 2. Проверяем права доступа (только администратор организации)
	if err := s.checkAdminAccess(ctx, req.OrganizationID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Создаем шаблон
	created, err := s.templateRepo.Create(ctx, req.ToDomainTemplate())
	if err != nil {
		if errors.Is(err, templateRepo.ErrDuplicateTemplate) {
			s.logger.Warn("Create: template already exists for org=%d, teacher=%d, weekday=%d, time=%s",
				req.OrganizationID, req.TeacherID, req.Weekday, req.StartTime)
			return nil, ErrTemplateAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created template id=%d", created.ID)
	return models.FromDomainTemplate(created), nil
}

// GetByID получает шаблон расписания по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TemplateResponse, error) {
	s.logger.Info("GetByID: fetching template id=%d", id)

	tmpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("GetByID: template id=%d not found", id)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("GetByID: repository error for template id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTemplate(tmpl), nil
}

// List получает шаблоны расписания организации
// Публичный метод - расписание организации видно всем
func (s *Service) List(ctx context.Context, req *models.ListTemplatesRequest) (*models.TemplateListResponse, error) {
	s.logger.Info("List: fetching templates for org=%d, courseType=%v, isTrial=%v",
		req.OrganizationID, req.CourseType, req.IsTrial)

	templates, err := s.templateRepo.GetByOrganization(ctx, req.OrganizationID, req.CourseType, req.IsTrial)
	if err != nil {
		s.logger.Error("List: repository error for org=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d templates for org=%d", len(templates), req.OrganizationID)
	return models.FromDomainTemplateList(templates), nil
}

// Update обновляет шаблон расписания
// Обновляются только переданные поля
// Доступно только администраторам организации
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("Update: updating template id=%d by user=%d", id, req.UserID)

	// 1. Получаем существующий шаблон
	tmpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Update: template id=%d not found", id)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("Update: repository error for template id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа
	if err := s.checkAdminAccess(ctx, tmpl.OrganizationID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Применяем переданные поля
	if req.Weekday != nil {
		tmpl.Weekday = time.Weekday(*req.Weekday)
	}
	if req.StartTime != nil {
		tmpl.StartTime = types.TimeString(*req.StartTime)
	}
	if req.EndTime != nil {
		tmpl.EndTime = types.TimeString(*req.EndTime)
	}
	if req.CourseType != nil {
		tmpl.CourseType = *req.CourseType
	}
	if req.IsTrial != nil {
		tmpl.IsTrial = *req.IsTrial
	}
	if req.MaxCapacity != nil {
		tmpl.MaxCapacity = *req.MaxCapacity
	}

	// 4. Валидируем результат применения
	if err := s.validateTemplateData(int(tmpl.Weekday), tmpl.StartTime.String(), tmpl.EndTime.String(),
		tmpl.CourseType, tmpl.MaxCapacity); err != nil {
		s.logger.Warn("Update: validation failed for template id=%d: %v", id, err)
		return nil, err
	}

	// 5. Сохраняем
	updated, err := s.templateRepo.Update(ctx, id, tmpl)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Update: template id=%d not found during update", id)
			return nil, ErrTemplateNotFound
		}
		if errors.Is(err, templateRepo.ErrDuplicateTemplate) {
			s.logger.Warn("Update: template id=%d conflicts with existing template", id)
			return nil, ErrTemplateAlreadyExists
		}
		s.logger.Error("Update: repository error for template id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated template id=%d", id)
	return models.FromDomainTemplate(updated), nil
}

// Delete удаляет шаблон расписания
// Существующие бронирования не затрагиваются - слот просто перестает
// генерироваться в календаре
// Доступно только администраторам организации
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting template id=%d by user=%d", id, userID)

	// Получаем шаблон для проверки прав доступа
	tmpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Delete: template id=%d not found", id)
			return ErrTemplateNotFound
		}
		s.logger.Error("Delete: repository error for template id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkAdminAccess(ctx, tmpl.OrganizationID, userID); err != nil {
		return err
	}

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Delete: template id=%d not found during delete", id)
			return ErrTemplateNotFound
		}
		s.logger.Error("Delete: repository error for template id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted template id=%d", id)
	return nil
}

// Вспомогательные методы

// validateTemplateData проверяет бизнес-ограничения шаблона
func (s *Service) validateTemplateData(weekday int, startTime, endTime, courseType string, maxCapacity int) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("%w: weekday must be between 0 (Sunday) and 6 (Saturday)", ErrInvalidInput)
	}

	start := types.TimeString(startTime)
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	end := types.TimeString(endTime)
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	if courseType == "" || len(courseType) > domain.MaxCourseTypeLength {
		return fmt.Errorf("%w: course type must be 1-%d characters", ErrInvalidInput, domain.MaxCourseTypeLength)
	}

	if maxCapacity < domain.MinSlotCapacity || maxCapacity > domain.MaxSlotCapacity {
		return fmt.Errorf("%w: max capacity must be between %d and %d",
			ErrInvalidInput, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}

	return nil
}

// checkAdminAccess проверяет, что пользователь является администратором организации
func (s *Service) checkAdminAccess(ctx context.Context, organizationID int64, userID int64) error {
	org, err := s.coreClient.GetOrganization(ctx, organizationID)
	if err != nil {
		if errors.Is(err, coreClient.ErrOrganizationNotFound) {
			s.logger.Warn("checkAdminAccess: organization id=%d not found", organizationID)
			return ErrOrganizationNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get organization id=%d: %v", organizationID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get organization: %v", ErrInternal, err)
	}

	for _, adminID := range org.AdminIDs {
		if adminID == userID {
			return nil
		}
	}

	s.logger.Warn("checkAdminAccess: user=%d is not an admin of org=%d", userID, organizationID)
	return ErrAccessDenied
}
