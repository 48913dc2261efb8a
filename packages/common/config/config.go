package config

import (
	"io"
	"os"
	"quarry/packages/common/logger"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var configLogger = logger.NewSource("CONFIG", logger.Default)

const DefaultPath = "quarry.config.yaml"

// Wrapper for time.ParseDuration. Panics on error.
func parseDuration(raw string) time.Duration {
	v, e := time.ParseDuration(raw)

	if e != nil {
		panic(e)
	}

	return v
}

type dbConfig struct {
	RawQueryTimeout         string `yaml:"db-query-timeout" validate:"required,duration"`
	SkipPostConnection      bool   `yaml:"db-skip-post-connection" validate:"exists"`
	LogQueries              bool   `yaml:"db-log-queries" validate:"exists"`
	BreakerMaxRequests      uint32 `yaml:"db-breaker-max-requests" validate:"min=1"`
	BreakerFailureThreshold uint32 `yaml:"db-breaker-failure-threshold" validate:"min=1"`
	RawBreakerTimeout       string `yaml:"db-breaker-timeout" validate:"required,duration"`
}

func (c *dbConfig) QueryTimeout() time.Duration {
	return parseDuration(c.RawQueryTimeout)
}

// Period of the open state of the circuit breaker,
// after which breaker switches to the half-open state.
func (c *dbConfig) BreakerTimeout() time.Duration {
	return parseDuration(c.RawBreakerTimeout)
}

type httpServerConfig struct {
	Port           string   `yaml:"http-port" validate:"required"`
	Secured        bool     `yaml:"http-secured" validate:"exists"`
	AllowedOrigins []string `yaml:"http-allowed-origins" validate:"required,min=1"`
	// Requests per second per client, 0 disables rate limiting.
	RateLimit float64 `yaml:"http-rate-limit" validate:"min=0"`
}

type cacheConfig struct {
	RawSocketTimeout    string `yaml:"cache-socket-timeout" validate:"required,duration"`
	RawOperationTimeout string `yaml:"cache-operation-timeout" validate:"required,duration"`
	RawTTL              string `yaml:"cache-ttl" validate:"required,duration"`
}

func (c *cacheConfig) SocketTimeout() time.Duration {
	return parseDuration(c.RawSocketTimeout)
}

func (c *cacheConfig) OperationTimeout() time.Duration {
	return parseDuration(c.RawOperationTimeout)
}

func (c *cacheConfig) TTL() time.Duration {
	return parseDuration(c.RawTTL)
}

type queryConfig struct {
	DefaultPageSize int `yaml:"query-default-page-size" validate:"min=1"`
	// If true, then unknown columns in filter, default filter
	// and order by will fail the request instead of being ignored.
	StrictColumns bool `yaml:"query-strict-columns" validate:"exists"`
}

type debugConfig struct {
	Enabled bool `yaml:"debug-mode" validate:"exists"`
}

type appConfig struct {
	ServiceID        string `yaml:"service-id" validate:"required"`
	ShowLogs         bool   `yaml:"show-logs" validate:"exists"`
	TraceLogsEnabled bool   `yaml:"trace-logs" validate:"exists"`
	LogDir           string `yaml:"log-dir" validate:"required"`
}

type sentryConfig struct {
	TraceSampleRate float64 `yaml:"sentry-trace-sample-rate" validate:"min=0,max=1"`
}

type configs struct {
	dbConfig         `yaml:",inline"`
	httpServerConfig `yaml:",inline"`
	cacheConfig      `yaml:",inline"`
	queryConfig      `yaml:",inline"`
	debugConfig      `yaml:",inline"`
	appConfig        `yaml:",inline"`
	sentryConfig     `yaml:",inline"`
}

// Values used until Init() is called.
func defaults() *configs {
	return &configs{
		dbConfig: dbConfig{
			RawQueryTimeout:         "5s",
			BreakerMaxRequests:      1,
			BreakerFailureThreshold: 5,
			RawBreakerTimeout:       "30s",
		},
		httpServerConfig: httpServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
		cacheConfig: cacheConfig{
			RawSocketTimeout:    "3s",
			RawOperationTimeout: "1s",
			RawTTL:              "1m",
		},
		queryConfig: queryConfig{
			DefaultPageSize: 10,
		},
		appConfig: appConfig{
			ServiceID: "quarry",
			LogDir:    logger.DefaultDirectory,
		},
	}
}

var DB *dbConfig
var HTTP *httpServerConfig
var Cache *cacheConfig
var Query *queryConfig
var Debug *debugConfig
var App *appConfig
var Sentry *sentryConfig

func init() {
	apply(defaults())
}

func apply(c *configs) {
	DB = &c.dbConfig
	HTTP = &c.httpServerConfig
	Cache = &c.cacheConfig
	Query = &c.queryConfig
	Debug = &c.debugConfig
	App = &c.appConfig
	Sentry = &c.sentryConfig
}

var isInit bool = false

func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterValidation("exists", func(fl validator.FieldLevel) bool {
		return true // Always pass (just ensure that the field exists)
	})

	validate.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})

	return validate
}

// Parses and validates raw YAML config.
// Fields which are missing in raw config will keep their default values.
func parse(raw []byte) (*configs, error) {
	dest := defaults()

	if err := yaml.Unmarshal(raw, dest); err != nil {
		return nil, err
	}

	if err := newValidator().Struct(dest); err != nil {
		return nil, err
	}

	return dest, nil
}

func loadConfig(path string) *configs {
	configLogger.Info("Reading config file...", nil)

	file, err := os.Open(path)
	if err != nil {
		configLogger.Fatal("Failed to open config file", err.Error(), nil)
	}
	defer file.Close()

	rawConfig, err := io.ReadAll(file)
	if err != nil {
		configLogger.Fatal("Failed to read config file", err.Error(), nil)
	}

	configLogger.Info("Reading config file: OK", nil)

	configLogger.Info("Parsing and validating config file...", nil)

	dest, err := parse(rawConfig)
	if err != nil {
		configLogger.Fatal("Failed to parse config file", err.Error(), nil)
	}

	configLogger.Info("Parsing and validating config file: OK", nil)

	return dest
}

// Reads config from the specified path and loads secrets from .env.
// If path is empty, DefaultPath is used.
func Init(path string) {
	if isInit {
		configLogger.Fatal("Failed to initialize config", "Config already initialized", nil)
	}

	configLogger.Info("Initializing...", nil)

	if path == "" {
		path = DefaultPath
	}

	apply(loadConfig(path))
	loadSecrets()

	configLogger.Info("Initializing: OK", nil)

	isInit = true
}
