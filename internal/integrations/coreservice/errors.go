package coreservice

import "errors"

var (
	// ErrStudentNotFound возвращается, когда ученик не найден
	ErrStudentNotFound = errors.New("coreservice: student not found")

	// ErrOrganizationNotFound возвращается, когда организация не найдена
	ErrOrganizationNotFound = errors.New("coreservice: organization not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("coreservice: invalid response")

	// ErrInternal возвращается при сетевых и прочих внутренних ошибках клиента
	ErrInternal = errors.New("coreservice: internal error")
)
