package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type secrets struct {
	PrimaryDatabaseHost     string `validate:"required"`
	PrimaryDatabasePort     string `validate:"required"`
	PrimaryDatabaseName     string `validate:"required"`
	PrimaryDatabaseUser     string `validate:"required"`
	PrimaryDatabasePassword string `validate:"required"`

	// Replica is optional, if host is empty then primary is used for reads.
	ReplicaDatabaseHost     string
	ReplicaDatabasePort     string `validate:"required_with=ReplicaDatabaseHost"`
	ReplicaDatabaseName     string `validate:"required_with=ReplicaDatabaseHost"`
	ReplicaDatabaseUser     string `validate:"required_with=ReplicaDatabaseHost"`
	ReplicaDatabasePassword string `validate:"required_with=ReplicaDatabaseHost"`

	// Used to verify access tokens issued by identity service.
	AccessTokenPublicKey ed25519.PublicKey `validate:"required,len=32"`

	CacheURI      string `validate:"required"`
	CachePassword string `validate:"exists"`
	CacheDB       int    `validate:"min=0"`

	// Sentry is disabled if DSN is empty
	SentryDSN string
}

var Secret secrets

func getEnv(key string) string {
	env, _ := os.LookupEnv(key)

	configLogger.Trace("Loaded: "+key, nil)

	return env
}

var requiredEnvVars = []string{
	"PRIMARY_DB_HOST",
	"PRIMARY_DB_PORT",
	"PRIMARY_DB_NAME",
	"PRIMARY_DB_USER",
	"PRIMARY_DB_PASSWORD",

	"ACCESS_TOKEN_PUBLIC_KEY",

	"CACHE_URI",
	"CACHE_PASSWORD",
	"CACHE_DB",
}

// Decodes hex encoded ed25519 public key.
func parsePublicKey(raw string) (ed25519.PublicKey, error) {
	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, err
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, errors.New("invalid length of public key (must be " + strconv.Itoa(ed25519.PublicKeySize) + " bytes long)")
	}
	return ed25519.PublicKey(key), nil
}

func readSecrets() (secrets, error) {
	var s secrets

	for _, variable := range requiredEnvVars {
		if _, exists := os.LookupEnv(variable); !exists {
			return s, errors.New("Missing required env variable: " + variable)
		}
	}

	cacheDB, err := strconv.Atoi(getEnv("CACHE_DB"))
	if err != nil {
		return s, errors.New("Failed to parse CACHE_DB env variable: " + err.Error())
	}

	publicKey, err := parsePublicKey(getEnv("ACCESS_TOKEN_PUBLIC_KEY"))
	if err != nil {
		return s, errors.New("Failed to parse ACCESS_TOKEN_PUBLIC_KEY env variable: " + err.Error())
	}

	s.PrimaryDatabaseHost = getEnv("PRIMARY_DB_HOST")
	s.PrimaryDatabasePort = getEnv("PRIMARY_DB_PORT")
	s.PrimaryDatabaseName = getEnv("PRIMARY_DB_NAME")
	s.PrimaryDatabaseUser = getEnv("PRIMARY_DB_USER")
	s.PrimaryDatabasePassword = getEnv("PRIMARY_DB_PASSWORD")

	s.ReplicaDatabaseHost = getEnv("REPLICA_DB_HOST")
	s.ReplicaDatabasePort = getEnv("REPLICA_DB_PORT")
	s.ReplicaDatabaseName = getEnv("REPLICA_DB_NAME")
	s.ReplicaDatabaseUser = getEnv("REPLICA_DB_USER")
	s.ReplicaDatabasePassword = getEnv("REPLICA_DB_PASSWORD")

	s.AccessTokenPublicKey = publicKey

	s.CacheURI = getEnv("CACHE_URI")
	s.CachePassword = getEnv("CACHE_PASSWORD")
	s.CacheDB = cacheDB

	s.SentryDSN = getEnv("SENTRY_DSN")

	if err := newValidator().Struct(s); err != nil {
		return s, err
	}

	return s, nil
}

func loadSecrets() {
	configLogger.Info("Loading environment variables...", nil)

	// .env is optional, variables may be already set by environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		configLogger.Fatal("Failed to load .env file", err.Error(), nil)
	}

	s, err := readSecrets()
	if err != nil {
		configLogger.Fatal("Failed to load environment variables", err.Error(), nil)
	}

	Secret = s

	configLogger.Info("Loading environment variables: OK", nil)
}

// Returns true if replica DB is configured.
func (s *secrets) HasReplica() bool {
	return s.ReplicaDatabaseHost != ""
}
