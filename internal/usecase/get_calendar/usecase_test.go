package get_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.LessonBooking
	err      error
	calls    int
}

func (f *fakeBookingRepo) GetByOrganizationWithFilter(_ context.Context, _ domain.OrganizationBookingsFilter) ([]*domain.LessonBooking, error) {
	f.calls++
	return f.bookings, f.err
}

type fakeTemplateRepo struct {
	templates []*domain.ScheduleTemplate
	err       error
	calls     int
}

func (f *fakeTemplateRepo) GetByOrganization(_ context.Context, _ int64, _ *string, _ *bool) ([]*domain.ScheduleTemplate, error) {
	f.calls++
	return f.templates, f.err
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, templates *fakeTemplateRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, templates, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

// Сценарий из ТЗ: март 2025, один шаблон на каждый вторник 10:00-11:00
// с вместимостью 2, бронирований нет - каждый вторник показывает один слот
// с двумя местами, остальные дни слотов не имеют
func TestExecute_MarchTuesdaysScenario(t *testing.T) {
	templates := &fakeTemplateRepo{templates: []*domain.ScheduleTemplate{
		{ID: 1, OrganizationID: 1, TeacherID: 7, Weekday: time.Tuesday, StartTime: "10:00", EndTime: "11:00", CourseType: "piano", MaxCapacity: 2},
	}}
	bookings := &fakeBookingRepo{}

	uc := newTestUseCase(bookings, templates, date(2025, 3, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 1,
		CourseType:     "piano",
		StartDate:      date(2025, 3, 1),
		EndDate:        date(2025, 3, 31),
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 31)

	tuesdays := 0
	for _, day := range resp.Days {
		if day.Date.Weekday() == time.Tuesday {
			tuesdays++
			require.Len(t, day.Slots, 1, "tuesday %s", day.Date)
			assert.Equal(t, 2, day.Slots[0].RemainingSpots)
			assert.True(t, day.HasSchedule)
			assert.False(t, day.IsFullyBooked)
		} else if !day.IsPast {
			assert.Empty(t, day.Slots, "non-tuesday %s", day.Date)
			assert.False(t, day.HasSchedule)
		}
	}
	assert.Equal(t, 4, tuesdays)
}

func TestExecute_FetchesDataOncePerRequest(t *testing.T) {
	templates := &fakeTemplateRepo{}
	bookings := &fakeBookingRepo{}

	uc := newTestUseCase(bookings, templates, date(2025, 3, 1))

	_, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 1,
		CourseType:     "piano",
		StartDate:      date(2025, 3, 1),
		EndDate:        date(2025, 3, 31),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, templates.calls, "templates must be fetched once, not per day")
	assert.Equal(t, 1, bookings.calls, "bookings must be fetched once, not per day")
}

// Повторный запрос без изменений данных обязан давать идентичный календарь
func TestExecute_Idempotent(t *testing.T) {
	templates := &fakeTemplateRepo{templates: []*domain.ScheduleTemplate{
		{ID: 1, TeacherID: 7, Weekday: time.Friday, StartTime: "16:00", EndTime: "17:00", MaxCapacity: 3},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.LessonBooking{
		{TeacherID: 7, StartTime: "16:00", LessonDate: date(2025, 3, 7), Status: domain.StatusScheduled},
	}}

	uc := newTestUseCase(bookings, templates, date(2025, 3, 1))

	req := &Request{OrganizationID: 1, CourseType: "math", StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 31)}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Любая ошибка чтения проваливает весь запрос: частичный или пустой
// "успешный" календарь не возвращается
func TestExecute_FailsClosedOnBookingFetchError(t *testing.T) {
	templates := &fakeTemplateRepo{}
	bookings := &fakeBookingRepo{err: errors.New("connection refused")}

	uc := newTestUseCase(bookings, templates, date(2025, 3, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 1,
		CourseType:     "piano",
		StartDate:      date(2025, 3, 1),
		EndDate:        date(2025, 3, 31),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestExecute_FailsClosedOnTemplateFetchError(t *testing.T) {
	templates := &fakeTemplateRepo{err: errors.New("connection refused")}
	bookings := &fakeBookingRepo{}

	uc := newTestUseCase(bookings, templates, date(2025, 3, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 1,
		CourseType:     "piano",
		StartDate:      date(2025, 3, 1),
		EndDate:        date(2025, 3, 31),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestExecute_RangeBeyondHorizonHasNoBookableSlots(t *testing.T) {
	templates := &fakeTemplateRepo{templates: []*domain.ScheduleTemplate{
		{ID: 1, TeacherID: 7, Weekday: time.Tuesday, StartTime: "10:00", EndTime: "11:00", MaxCapacity: 2},
	}}
	bookings := &fakeBookingRepo{}

	uc := newTestUseCase(bookings, templates, date(2025, 3, 15))

	resp, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 1,
		CourseType:     "piano",
		StartDate:      date(2025, 6, 1),
		EndDate:        date(2025, 6, 30),
	})

	require.NoError(t, err)
	for _, day := range resp.Days {
		assert.True(t, day.IsBeyondHorizon)
		assert.Empty(t, day.Slots)
		assert.False(t, day.IsBookable())
	}
}

func TestExecute_AnomalyFlaggedOnOverbookedDay(t *testing.T) {
	templates := &fakeTemplateRepo{templates: []*domain.ScheduleTemplate{
		{ID: 1, TeacherID: 7, Weekday: time.Tuesday, StartTime: "10:00", EndTime: "11:00", MaxCapacity: 1},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.LessonBooking{
		{TeacherID: 7, StartTime: "10:00", LessonDate: date(2025, 3, 4), Status: domain.StatusScheduled},
		{TeacherID: 7, StartTime: "10:00", LessonDate: date(2025, 3, 4), Status: domain.StatusScheduled},
	}}

	uc := newTestUseCase(bookings, templates, date(2025, 3, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		OrganizationID: 1,
		CourseType:     "piano",
		StartDate:      date(2025, 3, 1),
		EndDate:        date(2025, 3, 31),
	})

	require.NoError(t, err)

	for _, day := range resp.Days {
		if day.Date.Equal(date(2025, 3, 4)) {
			assert.True(t, day.HasAnomaly)
			assert.True(t, day.IsFullyBooked)
			require.Len(t, day.Slots, 1)
			assert.Equal(t, 0, day.Slots[0].RemainingSpots)
		} else {
			assert.False(t, day.HasAnomaly, "day %s", day.Date)
		}
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTemplateRepo{}, date(2025, 3, 1))

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "zero organization",
			req:     &Request{CourseType: "piano", StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 31)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing course type",
			req:     &Request{OrganizationID: 1, StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 31)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end before start",
			req:     &Request{OrganizationID: 1, CourseType: "piano", StartDate: date(2025, 3, 31), EndDate: date(2025, 3, 1)},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "range too long",
			req:     &Request{OrganizationID: 1, CourseType: "piano", StartDate: date(2025, 1, 1), EndDate: date(2025, 6, 1)},
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
