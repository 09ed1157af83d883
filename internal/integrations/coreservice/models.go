package coreservice

// Student ученик платформы
type Student struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organizationId"`
	Name           string `json:"name"`
	ParentID       *int64 `json:"parentId,omitempty"`
	IsActive       bool   `json:"isActive"`
}

// Organization организация (учебный центр)
type Organization struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Timezone string  `json:"timezone"`
	AdminIDs []int64 `json:"adminIds"`
	IsActive bool    `json:"isActive"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
