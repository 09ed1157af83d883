package create_booking

import "errors"

var (
	// ErrStudentNotFound возвращается, когда ученик не найден
	ErrStudentNotFound = errors.New("create_booking: student not found")

	// ErrOrganizationNotFound возвращается, когда организация не найдена
	ErrOrganizationNotFound = errors.New("create_booking: organization not found")

	// ErrInvalidDate возвращается при попытке забронировать прошедшую дату
	ErrInvalidDate = errors.New("create_booking: invalid lesson date")

	// ErrDateBeyondHorizon возвращается, когда дата дальше горизонта бронирования
	ErrDateBeyondHorizon = errors.New("create_booking: date is beyond the booking horizon")

	// ErrInvalidTimeSlot возвращается, когда на выбранную дату и время нет
	// подходящего шаблона расписания
	ErrInvalidTimeSlot = errors.New("create_booking: no schedule for this time slot")

	// ErrSlotUnavailable возвращается, когда вместимость слота исчерпана
	// Отдельная ошибка: UI должен предложить выбрать другой слот, а не повторять этот
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
