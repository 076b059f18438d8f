package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix only matters for fields without one.
const EnvPrefix = "CAMPUSKART"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "CAMPUSKART_APP_ENV"
	EnvPort       = "CAMPUSKART_APP_PORT"
	EnvDBDSN      = "CAMPUSKART_DB_DSN"
	EnvDBHost     = "CAMPUSKART_DB_HOST"
	EnvDBUser     = "CAMPUSKART_DB_USER"
	EnvDBName     = "CAMPUSKART_DB_NAME"
	EnvRedisURL   = "CAMPUSKART_REDIS_URL"
	EnvJWTSecret  = "CAMPUSKART_JWT_SECRET"
	EnvJWTIssuer  = "CAMPUSKART_JWT_ISSUER"
	EnvJWTExpMins = "CAMPUSKART_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
