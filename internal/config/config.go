package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdle     time.Duration
	DBMaxConnLifetime time.Duration
	MigrateOnStart    bool
	SeedFile          string

	AuthSecret         string
	SessionTTL         time.Duration
	SessionCookieName  string
	LoginRatePerMinute int

	CORSAllowedOrigins []string
	TrustedProxies     []string
	RateLimitRPS       int
	RateLimitBurst     int

	CatalogCacheSize   int
	CatalogCacheTTL    time.Duration
	ViewStateCacheSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		DBUser:            getEnv(EnvDBUser, "postgres"),
		DBPassword:        getEnv(EnvDBPassword, "postgres"),
		DBHost:            getEnv(EnvDBHost, "localhost"),
		DBPort:            getEnv(EnvDBPort, "5432"),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdle:     getEnvAsDuration(EnvDBMaxConnIdle, DefaultDBMaxConnIdle),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
		MigrateOnStart:    getEnvAsBool(EnvMigrateOnStart, true),
		SeedFile:          getEnv(EnvSeedFile, ""),

		AuthSecret:         getEnv(EnvAuthSecret, ""),
		SessionTTL:         getEnvAsDuration(EnvSessionTTL, DefaultSessionTTL),
		SessionCookieName:  getEnv(EnvSessionCookieName, DefaultSessionCookieName),
		LoginRatePerMinute: getEnvAsInt(EnvLoginRatePerMinute, DefaultLoginRatePerMinute),

		CORSAllowedOrigins: getEnvAsList(EnvCORSAllowedOrigins),
		TrustedProxies:     getEnvAsList(EnvTrustedProxies),
		RateLimitRPS:       getEnvAsInt(EnvRateLimitRPS, DefaultRateLimitRPS),
		RateLimitBurst:     getEnvAsInt(EnvRateLimitBurst, DefaultRateLimitBurst),

		CatalogCacheSize:   getEnvAsInt(EnvCatalogCacheSize, DefaultCatalogCacheSize),
		CatalogCacheTTL:    getEnvAsDuration(EnvCatalogCacheTTL, DefaultCatalogCacheTTL),
		ViewStateCacheSize: getEnvAsInt(EnvViewStateCacheSize, DefaultViewStateCacheSize),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.AuthSecret == "" {
		if !cfg.IsDev() {
			return nil, fmt.Errorf("AUTH_SECRET environment variable must be set for security")
		}
		cfg.AuthSecret = devAuthSecret
	}
	if !cfg.IsDev() && len(cfg.AuthSecret) < MinAuthSecretLength {
		return nil, fmt.Errorf("AUTH_SECRET must be at least %d bytes", MinAuthSecretLength)
	}

	return cfg, nil
}

// IsDev reports whether the app runs in the development environment
func (c *Config) IsDev() bool {
	return c.Environment == DefaultEnvironment
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
