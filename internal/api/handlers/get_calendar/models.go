package get_calendar

import (
	"strconv"
	"time"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	getCalendar "github.com/lessonhub/LMS-BookingService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	OrganizationID int64         `json:"organizationId"`
	CourseType     string        `json:"courseType"`
	IsTrial        bool          `json:"isTrial"`
	StartDate      string        `json:"startDate"`
	EndDate        string        `json:"endDate"`
	Days           []CalendarDay `json:"days"`
}

// CalendarDay модель одного дня календаря
type CalendarDay struct {
	Date            string     `json:"date"`
	IsPast          bool       `json:"isPast"`
	IsToday         bool       `json:"isToday"`
	IsBeyondHorizon bool       `json:"isBeyondHorizon"`
	HasSchedule     bool       `json:"hasSchedule"`
	IsFullyBooked   bool       `json:"isFullyBooked"`
	HasAnomaly      bool       `json:"hasAnomaly,omitempty"`
	Slots           []TimeSlot `json:"slots"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	TeacherID      int64  `json:"teacherId"`
	RemainingSpots int    `json:"remainingSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(organizationID int64, courseType, isTrialStr, startDateStr, endDateStr string) (*getCalendar.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	isTrial := false
	if isTrialStr != "" {
		isTrial, err = strconv.ParseBool(isTrialStr)
		if err != nil {
			return nil, err
		}
	}

	return &getCalendar.Request{
		OrganizationID: organizationID,
		CourseType:     courseType,
		IsTrial:        isTrial,
		StartDate:      startDate,
		EndDate:        endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]TimeSlot, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = TimeSlot{
				StartTime:      slot.StartTime.String(),
				EndTime:        slot.EndTime.String(),
				TeacherID:      slot.TeacherID,
				RemainingSpots: slot.RemainingSpots,
				TotalSpots:     slot.TotalSpots,
			}
		}

		days[i] = CalendarDay{
			Date:            day.Date.Format(domain.DateFormat),
			IsPast:          day.IsPast,
			IsToday:         day.IsToday,
			IsBeyondHorizon: day.IsBeyondHorizon,
			HasSchedule:     day.HasSchedule,
			IsFullyBooked:   day.IsFullyBooked,
			HasAnomaly:      day.HasAnomaly,
			Slots:           slots,
		}
	}

	return &CalendarResponse{
		OrganizationID: resp.OrganizationID,
		CourseType:     resp.CourseType,
		IsTrial:        resp.IsTrial,
		StartDate:      resp.StartDate.Format(domain.DateFormat),
		EndDate:        resp.EndDate.Format(domain.DateFormat),
		Days:           days,
	}
}
