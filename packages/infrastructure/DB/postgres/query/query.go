package query

import (
	"context"
	"errors"
	Error "quarry/packages/common/errors"
	"quarry/packages/common/logger"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var queryLogger = logger.NewSource("QUERY", logger.Default)

type Query struct {
	SQL  string
	Args []any
}

func New(sql string, args ...any) *Query {
	return &Query{
		SQL:  sql,
		Args: args,
	}
}

// Renders squirrel builder into the Query.
func FromSqlizer(s sq.Sqlizer) (*Query, error) {
	sql, args, err := s.ToSql()
	if err != nil {
		return nil, err
	}
	return New(sql, args...), nil
}

// Converts err into *Error.Status
func (q *Query) ConvertAndLogError(err error) *Error.Status {
	if errors.Is(err, pgx.ErrNoRows) {
		return Error.StatusNotFound
	}

	defer queryLogger.Debug("Failed query: "+q.SQL, nil)

	if errors.Is(err, context.DeadlineExceeded) {
		queryLogger.Error("Query failed", "Operation timeout", nil)
		return Error.StatusTimeout
	}

	queryLogger.Error("Query failed", err.Error(), nil)
	return Error.StatusInternalError
}
