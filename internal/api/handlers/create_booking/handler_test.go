package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/lessonhub/LMS-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"studentId":42,"organizationId":1,"courseType":"piano","lessonDate":"2025-03-04","startTime":"10:00"}`

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	name := "Анна Петрова"
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:             10,
		Ref:            uuid.New(),
		StudentID:      42,
		OrganizationID: 1,
		TeacherID:      7,
		LessonDate:     time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		EndTime:        "11:00",
		CourseType:     "piano",
		Status:         "scheduled",
		StudentName:    &name,
	}}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2025-03-04", resp.LessonDate)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.NotEmpty(t, resp.Ref)
}

func TestHandle_SlotUnavailableConflict(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotUnavailable}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_ErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "student not found", err: createBooking.ErrStudentNotFound, want: http.StatusNotFound},
		{name: "organization not found", err: createBooking.ErrOrganizationNotFound, want: http.StatusNotFound},
		{name: "past date", err: createBooking.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "beyond horizon", err: createBooking.ErrDateBeyondHorizon, want: http.StatusBadRequest},
		{name: "no schedule for slot", err: createBooking.ErrInvalidTimeSlot, want: http.StatusBadRequest},
		{name: "internal", err: createBooking.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	uc := &fakeUseCase{}

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "missing student", body: `{"organizationId":1,"courseType":"piano","lessonDate":"2025-03-04","startTime":"10:00"}`},
		{name: "bad date format", body: `{"studentId":42,"organizationId":1,"courseType":"piano","lessonDate":"04.03.2025","startTime":"10:00"}`},
		{name: "bad time format", body: `{"studentId":42,"organizationId":1,"courseType":"piano","lessonDate":"2025-03-04","startTime":"10am"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, uc, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
