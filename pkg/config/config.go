package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Client       ClientConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = DriverSQLite
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadClient parses configuration for client-only binaries that never
// open the database, so DB settings are not required.
func LoadClient() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FOODEXPRESS_APP_ENV" required:"true"`
	Port         string `envconfig:"FOODEXPRESS_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"FOODEXPRESS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FOODEXPRESS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FOODEXPRESS_DB_DSN"`
	Driver string `envconfig:"FOODEXPRESS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FOODEXPRESS_DB_HOST"`
	LegacyPort     int    `envconfig:"FOODEXPRESS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FOODEXPRESS_DB_USER"`
	LegacyPassword string `envconfig:"FOODEXPRESS_DB_PASSWORD"`
	LegacyName     string `envconfig:"FOODEXPRESS_DB_NAME"`
	LegacySSLMode  string `envconfig:"FOODEXPRESS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FOODEXPRESS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FOODEXPRESS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FOODEXPRESS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FOODEXPRESS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FOODEXPRESS_REDIS_URL"`
	Address      string        `envconfig:"FOODEXPRESS_REDIS_ADDR"`
	Password     string        `envconfig:"FOODEXPRESS_REDIS_PASSWORD"`
	DB           int           `envconfig:"FOODEXPRESS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FOODEXPRESS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FOODEXPRESS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FOODEXPRESS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FOODEXPRESS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FOODEXPRESS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether any redis endpoint was configured. The API keeps
// the order idempotency guard off when redis is absent.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

// ClientConfig drives the headless ordering client (cmd/orderdemo).
type ClientConfig struct {
	APIBaseURL string        `envconfig:"FOODEXPRESS_API_BASE_URL" default:"http://localhost:3000"`
	StatePath  string        `envconfig:"FOODEXPRESS_CLIENT_STATE_PATH"`
	Timeout    time.Duration `envconfig:"FOODEXPRESS_CLIENT_TIMEOUT" default:"10s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"FOODEXPRESS_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"FOODEXPRESS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.Driver == DriverSQLite {
		db.DSN = DefaultSQLiteDSN
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
