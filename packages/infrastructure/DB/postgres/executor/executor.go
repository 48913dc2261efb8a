package executor

import (
	"context"
	"fmt"
	"quarry/packages/common/config"
	"quarry/packages/common/logger"
	"quarry/packages/infrastructure/DB/postgres/connection"
	"quarry/packages/infrastructure/DB/postgres/query"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var executorLogger = logger.NewSource("EXECUTOR", logger.Default)

var conManager *connection.Manager

func Init(manager *connection.Manager) {
	if manager == nil {
		executorLogger.Panic(
			"Failed to initlized DB executor module",
			"Connetion manager can't be nil",
			nil,
		)
	}
	conManager = manager
}

func formatArg(arg any) string {
	switch a := arg.(type) {
	case string:
		return a
	case int32:
		return strconv.FormatInt(int64(a), 10)
	case int64:
		return strconv.FormatInt(a, 10)
	case bool:
		return strconv.FormatBool(a)
	case decimal.Decimal:
		return a.String()
	case time.Time:
		return a.Format(time.RFC3339Nano)
	case nil:
		return "NULL"
	}
	return fmt.Sprint(arg)
}

func logQuery(q *query.Query) {
	if !config.Debug.Enabled || !config.DB.LogQueries {
		return
	}

	args := make([]string, len(q.Args))
	for i, arg := range q.Args {
		args[i] = formatArg(arg)
	}

	executorLogger.Debug("Running query:\n"+q.SQL+"\n * Query args: "+strings.Join(args, "; "), nil)
}

// Acquires connection and derives query context from ctx.
// Connection must be released and context cancelled only after result was fully read.
func prepare(
	ctx context.Context,
	conType connection.Type,
	q *query.Query,
) (*pgxpool.Conn, context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DB.QueryTimeout())

	con, err := conManager.GetConnection(ctx, conType)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	logQuery(q)

	return con, ctx, cancel, nil
}

// Runs q and collects all resulting rows via scan.
// Errors are returned as is, use query.ConvertAndLogError to convert them.
func Collect[T any](
	ctx context.Context,
	conType connection.Type,
	q *query.Query,
	scan func(row pgx.CollectableRow) (T, error),
) ([]T, error) {
	con, ctx, cancel, err := prepare(ctx, conType, q)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer con.Release()

	rows, err := con.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scan)
}

// Runs q and scans first resulting row into the given destinations.
// All dests must be pointers. Returns pgx.ErrNoRows if there are no rows.
func Row(ctx context.Context, conType connection.Type, q *query.Query, dests ...any) error {
	con, ctx, cancel, err := prepare(ctx, conType, q)
	if err != nil {
		return err
	}
	defer cancel()
	defer con.Release()

	return con.QueryRow(ctx, q.SQL, q.Args...).Scan(dests...)
}

// Wrapper for '*pgxpool.Con.Exec'
func Exec(ctx context.Context, conType connection.Type, q *query.Query) error {
	con, ctx, cancel, err := prepare(ctx, conType, q)
	if err != nil {
		return err
	}
	defer cancel()
	defer con.Release()

	_, err = con.Exec(ctx, q.SQL, q.Args...)

	return err
}
