package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Cache    CacheConfig
	Redis    RedisConfig
	MinIO    MinIOConfig
	Audit    AuditConfig
}

type ServerConfig struct {
	AppEnv           string
	Port             string
	CORSAllowOrigins []string
	ShutdownTimeout  time.Duration
}

type LoggerConfig struct {
	Level string
}

type DatabaseConfig struct {
	URL         string
	AutoMigrate bool
	MaxConns    int
}

type AuthConfig struct {
	// JWTSecret signs HS256 tokens; used when JWKSURL is empty.
	JWTSecret string
	JWKSURL   string
	Issuer    string
}

type CacheConfig struct {
	// Driver is one of redis, memory or none.
	Driver string
	TTL    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UseSSL       bool
	Region       string
	ExportBucket string
	URLExpiry    time.Duration
}

type AuditConfig struct {
	RetentionDays int
	PurgeInterval time.Duration
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			AppEnv:           getEnv("APP_ENV", "development"),
			Port:             getEnv("PORT", "8080"),
			CORSAllowOrigins: getEnvSlice("CORS_ALLOW_ORIGINS", []string{"*"}),
			ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			URL:         getEnv("DATABASE_URL", ""),
			AutoMigrate: getEnvBool("AUTO_MIGRATE", true),
			MaxConns:    getEnvInt("DATABASE_MAX_CONNS", 10),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			JWKSURL:   getEnv("JWKS_URL", ""),
			Issuer:    getEnv("JWT_ISSUER", ""),
		},
		Cache: CacheConfig{
			Driver: strings.ToLower(getEnv("CACHE_DRIVER", "redis")),
			TTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:     getEnv("MINIO_ENDPOINT", ""),
			AccessKey:    getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey:    getEnv("MINIO_SECRET_KEY", "minioadmin"),
			UseSSL:       getEnvBool("MINIO_USE_SSL", false),
			Region:       getEnv("MINIO_REGION", ""),
			ExportBucket: getEnv("EXPORT_BUCKET", "catalog-exports"),
			URLExpiry:    getEnvDuration("EXPORT_URL_EXPIRY", time.Hour),
		},
		Audit: AuditConfig{
			RetentionDays: getEnvInt("AUDIT_RETENTION_DAYS", 90),
			PurgeInterval: getEnvDuration("AUDIT_PURGE_INTERVAL", 24*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Database.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.Auth.JWTSecret == "" && c.Auth.JWKSURL == "" {
		errs = append(errs, errors.New("one of JWT_SECRET or JWKS_URL is required"))
	}
	switch c.Cache.Driver {
	case "redis", "memory", "none":
	default:
		errs = append(errs, errors.New("CACHE_DRIVER must be redis, memory or none"))
	}
	if c.Audit.RetentionDays <= 0 {
		errs = append(errs, errors.New("AUDIT_RETENTION_DAYS must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production" || c.Server.AppEnv == "prod"
}

// ExportEnabled reports whether an object store is configured for catalog exports.
func (c *Config) ExportEnabled() bool {
	return c.MinIO.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return fallback
}
