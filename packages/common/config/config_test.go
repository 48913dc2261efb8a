package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawConfig = `
db-query-timeout: 3s
db-skip-post-connection: true
db-log-queries: false
db-breaker-max-requests: 2
db-breaker-failure-threshold: 3
db-breaker-timeout: 10s

http-port: "9000"
http-secured: false
http-allowed-origins:
  - http://localhost:3000
http-rate-limit: 20

cache-socket-timeout: 2s
cache-operation-timeout: 500ms
cache-ttl: 30s

query-default-page-size: 25
query-strict-columns: true

debug-mode: false

service-id: quarry-test
show-logs: false
trace-logs: false
log-dir: /tmp/quarry

sentry-trace-sample-rate: 0.5
`

func TestParse(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		c, err := parse([]byte(rawConfig))
		require.NoError(t, err)

		assert.Equal(t, 3*time.Second, c.dbConfig.QueryTimeout())
		assert.Equal(t, 10*time.Second, c.dbConfig.BreakerTimeout())
		assert.Equal(t, uint32(3), c.BreakerFailureThreshold)
		assert.Equal(t, "9000", c.Port)
		assert.Equal(t, []string{"http://localhost:3000"}, c.AllowedOrigins)
		assert.Equal(t, 500*time.Millisecond, c.cacheConfig.OperationTimeout())
		assert.Equal(t, 25, c.DefaultPageSize)
		assert.True(t, c.StrictColumns)
		assert.Equal(t, "/tmp/quarry", c.LogDir)
		assert.Equal(t, 0.5, c.TraceSampleRate)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		c, err := parse([]byte("service-id: other\n"))
		require.NoError(t, err)

		assert.Equal(t, "other", c.ServiceID)
		assert.Equal(t, 10, c.DefaultPageSize)
		assert.Equal(t, 5*time.Second, c.dbConfig.QueryTimeout())
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := parse([]byte("db-query-timeout: soon\n"))
		assert.Error(t, err)
	})

	t.Run("invalid page size", func(t *testing.T) {
		_, err := parse([]byte("query-default-page-size: 0\n"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := parse([]byte("http-allowed-origins: [\n"))
		assert.Error(t, err)
	})
}

func TestDefaults(t *testing.T) {
	require.NotNil(t, DB)
	require.NotNil(t, Query)
	assert.Equal(t, 10, Query.DefaultPageSize)
	assert.False(t, Query.StrictColumns)
}

func setRequiredEnv(t *testing.T, publicKey string) {
	t.Setenv("PRIMARY_DB_HOST", "localhost")
	t.Setenv("PRIMARY_DB_PORT", "5432")
	t.Setenv("PRIMARY_DB_NAME", "quarry")
	t.Setenv("PRIMARY_DB_USER", "quarry")
	t.Setenv("PRIMARY_DB_PASSWORD", "secret")
	t.Setenv("ACCESS_TOKEN_PUBLIC_KEY", publicKey)
	t.Setenv("CACHE_URI", "localhost:6379")
	t.Setenv("CACHE_PASSWORD", "")
	t.Setenv("CACHE_DB", "0")
}

func TestReadSecrets(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		setRequiredEnv(t, hex.EncodeToString(pub))

		s, err := readSecrets()
		require.NoError(t, err)

		assert.Equal(t, pub, s.AccessTokenPublicKey)
		assert.False(t, s.HasReplica())
		assert.Empty(t, s.SentryDSN)
	})

	t.Run("invalid public key", func(t *testing.T) {
		setRequiredEnv(t, "abcd")

		_, err := readSecrets()
		assert.Error(t, err)
	})

	t.Run("incomplete replica", func(t *testing.T) {
		setRequiredEnv(t, hex.EncodeToString(pub))
		t.Setenv("REPLICA_DB_HOST", "replica")

		_, err := readSecrets()
		assert.Error(t, err)
	})
}
