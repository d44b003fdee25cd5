package config

// EnvPrefix is passed to envconfig; individual fields carry fully
// qualified envconfig tags so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "FOODEXPRESS_DB_DSN"
	EnvDBHost = "FOODEXPRESS_DB_HOST"
	EnvDBUser = "FOODEXPRESS_DB_USER"
	EnvDBName = "FOODEXPRESS_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

const (
	// DriverPostgres is the default relational backend.
	DriverPostgres = "postgres"
	// DriverSQLite backs local development and tests when
	// FOODEXPRESS_USE_SQLITE is set.
	DriverSQLite = "sqlite"
)

// DefaultSQLiteDSN is used when the sqlite driver is selected without
// an explicit DSN.
const DefaultSQLiteDSN = "file:foodexpress.db?cache=shared"
