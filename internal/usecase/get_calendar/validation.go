package get_calendar

import (
	"fmt"

	"github.com/lessonhub/LMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OrganizationID <= 0 {
		return fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}

	if req.CourseType == "" {
		return fmt.Errorf("%w: courseType is required", ErrInvalidInput)
	}
	if len(req.CourseType) > domain.MaxCourseTypeLength {
		return fmt.Errorf("%w: courseType is too long", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidRange)
	}

	rangeDays := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if rangeDays > domain.MaxCalendarRangeDays {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidRange, domain.MaxCalendarRangeDays)
	}

	return nil
}
