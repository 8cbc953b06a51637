package config

import "time"

// Environment variable names
const (
	EnvPort               = "PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvDBUser             = "DB_USER"
	EnvDBPassword         = "DB_PASSWORD"
	EnvDBHost             = "DB_HOST"
	EnvDBPort             = "DB_PORT"
	EnvDBName             = "DB_NAME"
	EnvDBMaxConns         = "DB_MAX_CONNS"
	EnvDBMaxConnIdle      = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLifetime  = "DB_MAX_CONN_LIFETIME"
	EnvAuthSecret         = "AUTH_SECRET"
	EnvSessionTTL         = "SESSION_TTL"
	EnvSessionCookieName  = "SESSION_COOKIE_NAME"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
	EnvCatalogCacheSize   = "CATALOG_CACHE_SIZE"
	EnvCatalogCacheTTL    = "CATALOG_CACHE_TTL"
	EnvViewStateCacheSize = "VIEW_STATE_CACHE_SIZE"
	EnvLoginRatePerMinute = "LOGIN_RATE_PER_MINUTE"
	EnvMigrateOnStart     = "MIGRATE_ON_START"
	EnvRateLimitRPS       = "RATE_LIMIT_RPS"
	EnvRateLimitBurst     = "RATE_LIMIT_BURST"
	EnvSeedFile           = "SEED_FILE"
	EnvSchemaVersion      = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort               = 8080
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultEnvironment        = "dev"
	DefaultServiceName        = "recipe-book"
	DefaultVersion            = "dev"
	DefaultDBName             = "recipebook"
	DefaultDBMaxConns         = 10
	DefaultDBMaxConnIdle      = 5 * time.Minute
	DefaultDBMaxConnLifetime  = time.Hour
	DefaultSessionTTL         = time.Hour
	DefaultSessionCookieName  = "session"
	DefaultCatalogCacheSize   = 256
	DefaultCatalogCacheTTL    = time.Minute
	DefaultViewStateCacheSize = 1024
	DefaultLoginRatePerMinute = 10
	DefaultRateLimitRPS       = 20
	DefaultRateLimitBurst     = 40

	// MinAuthSecretLength applies outside the dev environment
	MinAuthSecretLength = 32

	// devAuthSecret signs tokens when AUTH_SECRET is unset in dev
	devAuthSecret = "recipe-book-development-secret-do-not-use"
)

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAuthSecret = "generate_with_openssl_rand_hex_32"
)
