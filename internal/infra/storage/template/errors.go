package template

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон расписания не найден
	ErrTemplateNotFound = errors.New("template.repository: schedule template not found")

	// ErrDuplicateTemplate возвращается при попытке создать дубликат шаблона
	// (организация + преподаватель + день недели + время начала)
	ErrDuplicateTemplate = errors.New("template.repository: duplicate schedule template")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("template.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("template.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("template.repository: failed to scan row")
)
