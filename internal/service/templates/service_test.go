package templates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	templateRepo "github.com/lessonhub/LMS-BookingService/internal/infra/storage/template"
	"github.com/lessonhub/LMS-BookingService/internal/integrations/coreservice"
	"github.com/lessonhub/LMS-BookingService/internal/service/templates/models"
)

type fakeTemplateRepo struct {
	stored    *domain.ScheduleTemplate
	createErr error
	created   []*domain.ScheduleTemplate
	deleted   []int64
}

func (f *fakeTemplateRepo) Create(_ context.Context, tmpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	tmpl.ID = 1
	f.created = append(f.created, tmpl)
	return tmpl, nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, _ int64) (*domain.ScheduleTemplate, error) {
	if f.stored == nil {
		return nil, templateRepo.ErrTemplateNotFound
	}
	return f.stored, nil
}

func (f *fakeTemplateRepo) GetByOrganization(_ context.Context, _ int64, _ *string, _ *bool) ([]*domain.ScheduleTemplate, error) {
	if f.stored == nil {
		return nil, nil
	}
	return []*domain.ScheduleTemplate{f.stored}, nil
}

func (f *fakeTemplateRepo) Update(_ context.Context, _ int64, tmpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	f.stored = tmpl
	return tmpl, nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCoreClient struct {
	adminIDs []int64
}

func (f *fakeCoreClient) GetOrganization(_ context.Context, id int64) (*coreservice.Organization, error) {
	return &coreservice.Organization{ID: id, Name: "Центр X", AdminIDs: f.adminIDs, IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateTemplateRequest {
	return &models.CreateTemplateRequest{
		UserID:         99,
		OrganizationID: 1,
		TeacherID:      7,
		Weekday:        2, // вторник
		StartTime:      "10:00",
		EndTime:        "11:00",
		CourseType:     "piano",
		MaxCapacity:    3,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 2, resp.Weekday)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, 3, resp.MaxCapacity)
	require.Len(t, repo.created, 1)
	assert.Equal(t, time.Tuesday, repo.created[0].Weekday)
}

func TestCreate_AccessDenied(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{1000}}, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.created)
}

func TestCreate_Duplicate(t *testing.T) {
	repo := &fakeTemplateRepo{createErr: templateRepo.ErrDuplicateTemplate}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrTemplateAlreadyExists)
}

func TestCreate_Validation(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.CreateTemplateRequest)
	}{
		{name: "weekday below range", mutate: func(r *models.CreateTemplateRequest) { r.Weekday = -1 }},
		{name: "weekday above range", mutate: func(r *models.CreateTemplateRequest) { r.Weekday = 7 }},
		{name: "malformed start time", mutate: func(r *models.CreateTemplateRequest) { r.StartTime = "1000" }},
		{name: "start after end", mutate: func(r *models.CreateTemplateRequest) { r.StartTime = "12:00" }},
		{name: "start equals end", mutate: func(r *models.CreateTemplateRequest) { r.StartTime = "11:00" }},
		{name: "empty course type", mutate: func(r *models.CreateTemplateRequest) { r.CourseType = "" }},
		{name: "zero capacity", mutate: func(r *models.CreateTemplateRequest) { r.MaxCapacity = 0 }},
		{name: "capacity above limit", mutate: func(r *models.CreateTemplateRequest) { r.MaxCapacity = domain.MaxSlotCapacity + 1 }},
		{name: "zero teacher", mutate: func(r *models.CreateTemplateRequest) { r.TeacherID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, repo.created)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &fakeTemplateRepo{stored: &domain.ScheduleTemplate{
		ID: 1, OrganizationID: 1, TeacherID: 7,
		Weekday: time.Tuesday, StartTime: "10:00", EndTime: "11:00",
		CourseType: "piano", MaxCapacity: 3,
	}}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	capacity := 5
	resp, err := svc.Update(context.Background(), 1, &models.UpdateTemplateRequest{
		UserID:      99,
		MaxCapacity: &capacity,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.MaxCapacity)
	// Остальные поля не тронуты
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "piano", resp.CourseType)
}

func TestUpdate_InvalidResult(t *testing.T) {
	repo := &fakeTemplateRepo{stored: &domain.ScheduleTemplate{
		ID: 1, OrganizationID: 1, TeacherID: 7,
		Weekday: time.Tuesday, StartTime: "10:00", EndTime: "11:00",
		CourseType: "piano", MaxCapacity: 3,
	}}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	// Новое время начала позже существующего времени окончания
	start := "12:00"
	_, err := svc.Update(context.Background(), 1, &models.UpdateTemplateRequest{
		UserID:    99,
		StartTime: &start,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	capacity := 5
	_, err := svc.Update(context.Background(), 404, &models.UpdateTemplateRequest{UserID: 99, MaxCapacity: &capacity})

	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestDelete_AdminOnly(t *testing.T) {
	repo := &fakeTemplateRepo{stored: &domain.ScheduleTemplate{ID: 1, OrganizationID: 1}}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	err := svc.Delete(context.Background(), 1, 500)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)

	err = svc.Delete(context.Background(), 1, 99)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestList_Empty(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewService(repo, &fakeCoreClient{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListTemplatesRequest{OrganizationID: 1})

	require.NoError(t, err)
	assert.Empty(t, resp.Templates)
}
