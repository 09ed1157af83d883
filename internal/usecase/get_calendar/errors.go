package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	// (конец раньше начала или диапазон длиннее MaxCalendarRangeDays)
	ErrInvalidRange = errors.New("get_calendar: invalid date range")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Календарь считается от одного снапшота данных: любая ошибка чтения
	// проваливает весь запрос, частичный календарь не возвращается
	ErrInternal = errors.New("get_calendar: internal error")
)
