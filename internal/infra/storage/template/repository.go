package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	"github.com/lessonhub/LMS-BookingService/pkg/dbmetrics"
	"github.com/lessonhub/LMS-BookingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL unique_violation
const pqUniqueViolation = "23505"

var templateColumns = []string{
	"id",
	"organization_id",
	"teacher_id",
	"weekday",
	"start_time",
	"end_time",
	"course_type",
	"is_trial",
	"max_capacity",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с шаблонами расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый шаблон расписания
func (r *Repository) Create(ctx context.Context, tmpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_templates").
		Columns(
			"organization_id",
			"teacher_id",
			"weekday",
			"start_time",
			"end_time",
			"course_type",
			"is_trial",
			"max_capacity",
		).
		Values(
			tmpl.OrganizationID,
			tmpl.TeacherID,
			int(tmpl.Weekday),
			tmpl.StartTime,
			tmpl.EndTime,
			tmpl.CourseType,
			tmpl.IsTrial,
			tmpl.MaxCapacity,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tmpl.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTemplate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tmpl.CreatedAt = createdAt.Time
	tmpl.UpdatedAt = updatedAt.Time

	return tmpl, nil
}

// GetByID получает шаблон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(templateColumns...).
		From("schedule_templates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tmpl, err := r.scanTemplate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan template: %v", ErrScanRow, err)
	}

	return tmpl, nil
}

// GetByOrganization получает шаблоны расписания организации
// Опционально фильтрует по типу курса и флагу пробного урока
// Результат отсортирован по дню недели и времени начала
func (r *Repository) GetByOrganization(ctx context.Context, organizationID int64, courseType *string, isTrial *bool) ([]*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(templateColumns...).
		From("schedule_templates").
		Where(squirrel.Eq{"organization_id": organizationID}).
		OrderBy("weekday ASC, start_time ASC")

	if courseType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"course_type": *courseType})
	}
	if isTrial != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_trial": *isTrial})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrganization - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrganization - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	templates := make([]*domain.ScheduleTemplate, 0)

	for rows.Next() {
		tmpl, err := r.scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByOrganization - scan row: %v", ErrScanRow, err)
		}
		templates = append(templates, tmpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByOrganization - rows error: %v", ErrScanRow, err)
	}

	return templates, nil
}

// Update обновляет шаблон расписания
func (r *Repository) Update(ctx context.Context, id int64, tmpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_templates").
		Set("teacher_id", tmpl.TeacherID).
		Set("weekday", int(tmpl.Weekday)).
		Set("start_time", tmpl.StartTime).
		Set("end_time", tmpl.EndTime).
		Set("course_type", tmpl.CourseType).
		Set("is_trial", tmpl.IsTrial).
		Set("max_capacity", tmpl.MaxCapacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTemplate
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	tmpl.ID = id
	tmpl.CreatedAt = createdAt.Time
	tmpl.UpdatedAt = updatedAt.Time

	return tmpl, nil
}

// Delete удаляет шаблон расписания
// Существующие бронирования не трогаем - они остаются в истории
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_templates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTemplate сканирует одну строку в модель шаблона
func (r *Repository) scanTemplate(row rowScanner) (*domain.ScheduleTemplate, error) {
	var tmpl domain.ScheduleTemplate
	var weekday int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&tmpl.ID,
		&tmpl.OrganizationID,
		&tmpl.TeacherID,
		&weekday,
		&tmpl.StartTime,
		&tmpl.EndTime,
		&tmpl.CourseType,
		&tmpl.IsTrial,
		&tmpl.MaxCapacity,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	tmpl.Weekday = time.Weekday(weekday)
	tmpl.CreatedAt = createdAt.Time
	tmpl.UpdatedAt = updatedAt.Time

	return &tmpl, nil
}

// isUniqueViolation проверяет, что ошибка - нарушение unique constraint
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}
