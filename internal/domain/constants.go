package domain

// Default configuration values
const (
	DefaultSlotCapacity = 1
)

// Booking policy constants
const (
	// BookingHorizonMonths максимальный горизонт бронирования: уроки нельзя
	// бронировать дальше, чем на два календарных месяца от текущего дня
	BookingHorizonMonths = 2

	// MaxCalendarRangeDays максимальная длина запрашиваемого диапазона календаря
	MaxCalendarRangeDays = 92
)

// Business validation constants
const (
	MinSlotCapacity             = 1
	MaxSlotCapacity             = 50
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCourseTypeLength         = 64
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы бронирований, не занимающих места в слоте
// Используются при подсчёте оставшейся вместимости
var InactiveStatuses = []BookingStatus{
	StatusCancelledByParent,
	StatusCancelledByAdmin,
	StatusNoShow,
}

// ActiveStatuses статусы бронирований, занимающих места в слоте
var ActiveStatuses = []BookingStatus{
	StatusScheduled,
	StatusCompleted,
}
