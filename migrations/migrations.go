// Package migrations содержит встроенные SQL миграции схемы хранилища историй.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
