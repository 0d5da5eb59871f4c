// Package sqlbuilder настраивает squirrel под диалект используемой базы данных
package sqlbuilder

import (
	"github.com/Masterminds/squirrel"
)

// Поддерживаемые драйверы
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// New возвращает построитель запросов с плейсхолдерами нужного диалекта:
// $1, $2 для postgres и ? для sqlite
func New(driver string) squirrel.StatementBuilderType {
	if driver == DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}
