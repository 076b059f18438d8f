package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	SMTP          SMTPConfig
	Uploads       UploadsConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CAMPUSKART_APP_ENV" required:"true"`
	Port         string `envconfig:"CAMPUSKART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CAMPUSKART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CAMPUSKART_LOG_WARN_STACK" default:"false"`

	ReadTimeout     time.Duration `envconfig:"CAMPUSKART_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"CAMPUSKART_HTTP_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"CAMPUSKART_HTTP_SHUTDOWN_TIMEOUT" default:"15s"`

	CORSOrigins []string `envconfig:"CAMPUSKART_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CAMPUSKART_DB_DSN"`
	Driver string `envconfig:"CAMPUSKART_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CAMPUSKART_DB_HOST"`
	LegacyPort     int    `envconfig:"CAMPUSKART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CAMPUSKART_DB_USER"`
	LegacyPassword string `envconfig:"CAMPUSKART_DB_PASSWORD"`
	LegacyName     string `envconfig:"CAMPUSKART_DB_NAME"`
	LegacySSLMode  string `envconfig:"CAMPUSKART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CAMPUSKART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CAMPUSKART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CAMPUSKART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CAMPUSKART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CAMPUSKART_REDIS_URL"`
	Address      string        `envconfig:"CAMPUSKART_REDIS_ADDR"`
	Password     string        `envconfig:"CAMPUSKART_REDIS_PASSWORD"`
	DB           int           `envconfig:"CAMPUSKART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CAMPUSKART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CAMPUSKART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CAMPUSKART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CAMPUSKART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CAMPUSKART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"CAMPUSKART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"CAMPUSKART_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"CAMPUSKART_JWT_EXPIRATION_MINUTES" default:"10080"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CAMPUSKART_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CAMPUSKART_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CAMPUSKART_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CAMPUSKART_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CAMPUSKART_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"CAMPUSKART_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"CAMPUSKART_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"CAMPUSKART_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"CAMPUSKART_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"CAMPUSKART_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"CAMPUSKART_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type SMTPConfig struct {
	Host        string        `envconfig:"CAMPUSKART_SMTP_HOST"`
	Port        int           `envconfig:"CAMPUSKART_SMTP_PORT" default:"587"`
	Username    string        `envconfig:"CAMPUSKART_SMTP_USERNAME"`
	Password    string        `envconfig:"CAMPUSKART_SMTP_PASSWORD"`
	FromAddress string        `envconfig:"CAMPUSKART_SMTP_FROM"`
	Timeout     time.Duration `envconfig:"CAMPUSKART_SMTP_TIMEOUT" default:"10s"`
}

// Enabled reports whether outbound mail is configured at all. An unset host
// turns the mailer into a logged no-op rather than a boot failure.
func (s SMTPConfig) Enabled() bool {
	return strings.TrimSpace(s.Host) != ""
}

type UploadsConfig struct {
	Dir         string `envconfig:"CAMPUSKART_UPLOADS_DIR" default:"public/uploads"`
	PublicPath  string `envconfig:"CAMPUSKART_UPLOADS_PUBLIC_PATH" default:"/uploads"`
	MaxUploadMB int    `envconfig:"CAMPUSKART_MAX_UPLOAD_MB" default:"10"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"CAMPUSKART_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
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
