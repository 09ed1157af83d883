// Package migrations содержит SQL миграции схемы, применяемые через goose
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
