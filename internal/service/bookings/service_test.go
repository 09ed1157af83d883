package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	bookingRepo "github.com/lessonhub/LMS-BookingService/internal/infra/storage/booking"
	"github.com/lessonhub/LMS-BookingService/internal/integrations/coreservice"
	"github.com/lessonhub/LMS-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	booking   *domain.LessonBooking
	getErr    error
	cancelled []domain.BookingStatus
	reasons   []string
	updated   []domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.LessonBooking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByStudentID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.LessonBooking, error) {
	return []*domain.LessonBooking{f.booking}, nil
}

func (f *fakeBookingRepo) GetByOrganizationWithFilter(_ context.Context, _ domain.OrganizationBookingsFilter) ([]*domain.LessonBooking, error) {
	return []*domain.LessonBooking{f.booking}, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.updated = append(f.updated, status)
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, status domain.BookingStatus, reason string) error {
	f.cancelled = append(f.cancelled, status)
	f.reasons = append(f.reasons, reason)
	return nil
}

type fakeCoreClient struct {
	adminIDs []int64
	err      error
}

func (f *fakeCoreClient) GetOrganization(_ context.Context, id int64) (*coreservice.Organization, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &coreservice.Organization{ID: id, Name: "Центр X", AdminIDs: f.adminIDs, IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduledBooking() *domain.LessonBooking {
	name := "Анна Петрова"
	return &domain.LessonBooking{
		ID:             10,
		Ref:            uuid.New(),
		StudentID:      42,
		OrganizationID: 1,
		TeacherID:      7,
		LessonDate:     time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		EndTime:        "11:00",
		CourseType:     "piano",
		Status:         domain.StatusScheduled,
		StudentName:    &name,
	}
}

func TestCancel_ByParent(t *testing.T) {
	repo := &fakeBookingRepo{booking: scheduledBooking()}
	svc := NewService(repo, &fakeCoreClient{}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:             42, // владелец бронирования
		CancellationReason: "болезнь",
	})

	require.NoError(t, err)
	require.Len(t, repo.cancelled, 1)
	assert.Equal(t, domain.StatusCancelledByParent, repo.cancelled[0])
	assert.Equal(t, "болезнь", repo.reasons[0])
}

func TestCancel_ByAdmin(t *testing.T) {
	repo := &fakeBookingRepo{booking: scheduledBooking()}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 99})

	require.NoError(t, err)
	require.Len(t, repo.cancelled, 1)
	assert.Equal(t, domain.StatusCancelledByAdmin, repo.cancelled[0])
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: scheduledBooking()}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 500})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	b := scheduledBooking()
	b.Status = domain.StatusCancelledByParent
	repo := &fakeBookingRepo{booking: b}
	svc := NewService(repo, &fakeCoreClient{}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 42})

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, &fakeCoreClient{}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 42})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_OwnBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: scheduledBooking()}
	svc := NewService(repo, &fakeCoreClient{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2025-03-04", resp.LessonDate)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestGetByID_ForeignBookingDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: scheduledBooking()}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 500)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_AdminOnly(t *testing.T) {
	repo := &fakeBookingRepo{booking: scheduledBooking()}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 99, Status: "no_show"})
	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, domain.StatusNoShow, repo.updated[0])

	err = svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 42, Status: "completed"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{booking: scheduledBooking()}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 99, Status: "postponed"})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.updated)
}

func TestGetOrganizationBookings_InvalidStatusFilter(t *testing.T) {
	repo := &fakeBookingRepo{booking: scheduledBooking()}
	svc := NewService(repo, &fakeCoreClient{adminIDs: []int64{99}}, nopLogger{})

	bad := "postponed"
	_, err := svc.GetOrganizationBookings(context.Background(), &models.GetOrganizationBookingsRequest{
		UserID:         99,
		OrganizationID: 1,
		Status:         &bad,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetStudentBookings_RepoError(t *testing.T) {
	repo := &errBookingRepo{err: errors.New("db down")}
	svc := NewService(repo, &fakeCoreClient{}, nopLogger{})

	_, err := svc.GetStudentBookings(context.Background(), &models.GetStudentBookingsRequest{UserID: 42, StudentID: 42})

	assert.ErrorIs(t, err, ErrInternal)
}

type errBookingRepo struct {
	fakeBookingRepo
	err error
}

func (e *errBookingRepo) GetByStudentID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.LessonBooking, error) {
	return nil, e.err
}
