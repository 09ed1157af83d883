package get_organization_bookings

import (
	"strconv"
	"time"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
	"github.com/lessonhub/LMS-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
func ToServiceRequest(organizationID, userID int64, teacherIDStr, courseType, isTrialStr, statusStr, startDateStr, endDateStr, includeInactiveStr string) (*models.GetOrganizationBookingsRequest, error) {
	req := &models.GetOrganizationBookingsRequest{
		UserID:         userID,
		OrganizationID: organizationID,
	}

	if teacherIDStr != "" {
		teacherID, err := strconv.ParseInt(teacherIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TeacherID = &teacherID
	}

	if courseType != "" {
		req.CourseType = &courseType
	}

	if isTrialStr != "" {
		isTrial, err := strconv.ParseBool(isTrialStr)
		if err != nil {
			return nil, err
		}
		req.IsTrial = &isTrial
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
