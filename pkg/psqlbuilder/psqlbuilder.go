package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder squirrel builder with Postgres placeholders ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT query with $n placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}
