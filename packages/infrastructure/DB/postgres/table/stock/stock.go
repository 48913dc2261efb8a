package stocktable

import (
	"context"
	"errors"
	"quarry/packages/common/config"
	"quarry/packages/core/stock"
	"quarry/packages/infrastructure/DB/postgres/executor"
	log "quarry/packages/infrastructure/DB/postgres/logger"
	"quarry/packages/infrastructure/DB/postgres/query"
	"quarry/packages/infrastructure/metrics"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sony/gobreaker/v2"
)

const tableName = "stock_item"

var table = &query.Table{
	Name:       tableName,
	Columns:    executor.StockItemColumns,
	TieBreaker: "id",
}

type Manager struct {
	breaker *gobreaker.CircuitBreaker[any]
}

// Cancelled requests and missing rows says nothing about DB health.
func isSuccessful(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, pgx.ErrNoRows)
}

// Returns storage names of catalog columns which aren't selected from the table.
func missingColumns(selected []string) []string {
	missing := []string{}
	for _, col := range stock.Catalog().Columns() {
		if !slices.Contains(selected, col.Storage) {
			missing = append(missing, col.Storage)
		}
	}
	return missing
}

func NewManager() *Manager {
	if missing := missingColumns(table.Columns); len(missing) != 0 {
		log.DB.Panic(
			"Failed to create stock item table manager",
			"Filterable columns aren't selected: "+strings.Join(missing, ", "),
			nil,
		)
	}

	threshold := config.DB.BreakerFailureThreshold

	return &Manager{
		breaker: gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:        tableName,
			MaxRequests: config.DB.BreakerMaxRequests,
			Timeout:     config.DB.BreakerTimeout(),
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			IsSuccessful: isSuccessful,
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.DB.Warning("Circuit breaker '"+name+"' state changed: "+from.String()+" -> "+to.String(), nil)
				metrics.SetBreakerState(name, to)
			},
		}),
	}
}

func execute[T any](m *Manager, fn func() (T, error)) (T, error) {
	r, err := m.breaker.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return r.(T), nil
}

// Returns true if err was caused by open circuit breaker.
func IsUnavailable(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
