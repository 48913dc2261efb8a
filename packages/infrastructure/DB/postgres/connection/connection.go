package connection

import (
	"context"
	"errors"
	"fmt"
	"quarry/packages/common/config"
	"quarry/packages/common/logger"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var connectionLogger = logger.NewSource("CONNECTION", logger.Default)

// Tables which must exist after migrations were applied.
var requiredTables = []string{"stock_item"}

type Manager struct {
	PrimaryPool   *pgxpool.Pool
	PrimaryConfig *pgxpool.Config
	// Same as PrimaryPool if replica isn't configured
	ReplicaPool *pgxpool.Pool
	isConnected bool
}

type Type byte

const (
	Primary Type = 1 << iota
	Replica
)

func (t Type) String() string {
	if t == Primary {
		return "primary"
	}
	return "replica"
}

func newConfig(user, password, host, port, dbName string) *pgxpool.Config {
	connectionLogger.Trace("Creating connection config...", nil)

	conConfig, err := pgxpool.ParseConfig(fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s", user, password, host, port, dbName,
	))

	if err != nil {
		connectionLogger.Fatal("Failed to parse connection URI", err.Error(), nil)
	}

	conConfig.MinConns = 10
	conConfig.MaxConns = 50
	conConfig.MaxConnIdleTime = time.Minute * 5
	conConfig.MaxConnLifetime = time.Minute * 60

	connectionLogger.Trace("Creating connection config: OK", nil)

	return conConfig
}

func createConnectionPool(poolName string, conConfig *pgxpool.Config) *pgxpool.Pool {
	connectionLogger.Info("Creating "+poolName+" connection pool...", nil)

	pool, err := pgxpool.NewWithConfig(context.Background(), conConfig)

	if err != nil {
		connectionLogger.Fatal("Failed to create "+poolName+" connection pool", err.Error(), nil)
	}

	connectionLogger.Info("Ping "+poolName+" connection...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)

	defer cancel()

	if err = pool.Ping(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			connectionLogger.Fatal("Failed to ping "+poolName+" DB", "Ping timeout", nil)
		}

		connectionLogger.Fatal("Failed to ping "+poolName+" DB", err.Error(), nil)
	}

	connectionLogger.Info("Ping "+poolName+" connection: OK", nil)

	connectionLogger.Info("Creating "+poolName+" connection pool: OK", nil)

	return pool
}

func (m *Manager) IsConnected() bool {
	return m.isConnected
}

func (m *Manager) hasReplica() bool {
	return m.ReplicaPool != nil && m.ReplicaPool != m.PrimaryPool
}

func (m *Manager) Connect() {
	if m.isConnected {
		connectionLogger.Panic("DB connection failed", "connection already established", nil)
	}

	m.PrimaryConfig = newConfig(
		config.Secret.PrimaryDatabaseUser,
		config.Secret.PrimaryDatabasePassword,
		config.Secret.PrimaryDatabaseHost,
		config.Secret.PrimaryDatabasePort,
		config.Secret.PrimaryDatabaseName,
	)
	m.PrimaryPool = createConnectionPool("primary", m.PrimaryConfig)

	if config.Secret.HasReplica() {
		replicaConfig := newConfig(
			config.Secret.ReplicaDatabaseUser,
			config.Secret.ReplicaDatabasePassword,
			config.Secret.ReplicaDatabaseHost,
			config.Secret.ReplicaDatabasePort,
			config.Secret.ReplicaDatabaseName,
		)
		m.ReplicaPool = createConnectionPool("replica", replicaConfig)
	} else {
		connectionLogger.Warning("Replica DB isn't configured, primary DB will be used for reads", nil)
		m.ReplicaPool = m.PrimaryPool
	}

	if err := m.postConnection(); err != nil {
		connectionLogger.Fatal("Post-connection failed", err.Error(), nil)
	}

	m.isConnected = true
}

func closePool(pool *pgxpool.Pool) error {
	done := make(chan bool)

	go func() {
		pool.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second * 10):
		return errors.New("timeout exceeded")
	}

	return nil
}

func (m *Manager) Disconnect() error {
	if !m.isConnected {
		return errors.New("connection not established")
	}

	connectionLogger.Info("Closing connection pool...", nil)

	if m.hasReplica() {
		if err := closePool(m.ReplicaPool); err != nil {
			return err
		}
	}

	if err := closePool(m.PrimaryPool); err != nil {
		return err
	}

	connectionLogger.Info("Closing connection pool: OK", nil)

	m.isConnected = false

	return nil
}

// Don't forget to release connection.
// Returns errors as is, so caller can tell timeout from other failures.
func (m *Manager) GetConnection(ctx context.Context, conType Type) (*pgxpool.Conn, error) {
	var pool *pgxpool.Pool

	switch conType {
	case Primary:
		pool = m.PrimaryPool
	case Replica:
		pool = m.ReplicaPool
	default:
		connectionLogger.Panic(
			"Failed to acquire connection",
			"Unknown connection type received",
			nil,
		)
	}

	connection, err := pool.Acquire(ctx)

	if err != nil {
		if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			connectionLogger.Error(
				"Failed to acquire connection from "+conType.String()+" pool",
				err.Error(),
				nil,
			)
		}
		return nil, err
	}

	return connection, nil
}

func (m *Manager) postConnection() error {
	if config.DB.SkipPostConnection {
		connectionLogger.Warning("Post-connection skipped", nil)
		return nil
	}

	connectionLogger.Info("Post-connection...", nil)

	connectionLogger.Info("Verifying that all tables exists in Primary DB...", nil)

	if err := m.checkTables(Primary); err != nil {
		return err
	}

	connectionLogger.Info("Verifying that all tables exists in Primary DB: OK", nil)

	if m.hasReplica() {
		connectionLogger.Info("Verifying that all tables exists in Replica DB...", nil)

		if err := m.checkTables(Replica); err != nil {
			return err
		}

		connectionLogger.Info("Verifying that all tables exists in Replica DB: OK", nil)
	}

	connectionLogger.Info("Post-connection: OK", nil)

	return nil
}

func (m *Manager) checkTables(conType Type) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	con, err := m.GetConnection(ctx, conType)
	if err != nil {
		return err
	}
	defer con.Release()

	sql := `SELECT t.table_name, EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_name = t.table_name
	) AS table_exists FROM unnest($1::text[]) AS t(table_name);`

	rows, err := con.Query(ctx, sql, requiredTables)
	if err != nil {
		return err
	}

	type table struct {
		name   string
		exists bool
	}

	tables, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*table, error) {
		table := new(table)

		if err := row.Scan(&table.name, &table.exists); err != nil {
			return nil, err
		}

		return table, nil
	})
	if err != nil {
		return err
	}

	nonExistingTables := []string{}
	for _, table := range tables {
		if !table.exists {
			nonExistingTables = append(nonExistingTables, table.name)
		}
	}

	if len(nonExistingTables) != 0 {
		return errors.New("Following table(-s) does not exists: " + strings.Join(nonExistingTables, ", ") + ". Run migrations first.")
	}

	return nil
}
