package domain

import (
	"time"

	"github.com/lessonhub/LMS-BookingService/pkg/types"
)

// ScheduleTemplate represents a recurring teacher availability rule:
// every <weekday> from <start> to <end> the teacher runs lessons of <course type>
// with at most MaxCapacity students booked in parallel
type ScheduleTemplate struct {
	ID             int64
	OrganizationID int64
	TeacherID      int64
	Weekday        time.Weekday
	StartTime      types.TimeString
	EndTime        types.TimeString
	CourseType     string
	IsTrial        bool
	MaxCapacity    int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AppliesTo returns true if the template generates a slot on the given date
func (t *ScheduleTemplate) AppliesTo(date time.Time) bool {
	return date.Weekday() == t.Weekday
}

// Matches returns true if the template serves the given course type and trial flag
func (t *ScheduleTemplate) Matches(courseType string, isTrial bool) bool {
	return t.CourseType == courseType && t.IsTrial == isTrial
}

// DurationMinutes returns the slot length in minutes, 0 when times are malformed
func (t *ScheduleTemplate) DurationMinutes() int {
	start, err := t.StartTime.Minutes()
	if err != nil {
		return 0
	}
	end, err := t.EndTime.Minutes()
	if err != nil {
		return 0
	}
	if end <= start {
		return 0
	}
	return end - start
}
