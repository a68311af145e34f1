package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	// StoreDriverPostgres persists folders, words and assignments in PostgreSQL.
	StoreDriverPostgres = "postgres"
	// StoreDriverMemory keeps everything in process memory (development and tests).
	StoreDriverMemory = "memory"

	// ImageBackendLocal stores word images in a directory on local disk.
	ImageBackendLocal = "local"
	// ImageBackendMinIO stores word images in an S3-compatible bucket.
	ImageBackendMinIO = "minio"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ImageConfig controls where word images live and how large they may be.
type ImageConfig struct {
	Backend  string
	Dir      string
	Prefix   string
	MaxBytes int64
}

// IdentityConfig describes the single active user every request runs as.
type IdentityConfig struct {
	Email string
	Name  string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost            string
	Port               string
	LogLevel           string
	ShutdownTimeoutSec int
	StoreDriver        string
	Database           DatabaseConfig
	MinIO              MinIOConfig
	Images             ImageConfig
	Identity           IdentityConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:            getEnv("APP_HOST", "localhost:8080"),
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Images: ImageConfig{
			Backend:  strings.ToLower(getEnv("IMAGE_BACKEND", ImageBackendLocal)),
			Dir:      getEnv("IMAGE_DIR", "."),
			Prefix:   getEnv("IMAGE_PREFIX", "image_users"),
			MaxBytes: getEnvInt64("IMAGE_MAX_BYTES", 5*1024*1024),
		},
		Identity: IdentityConfig{
			Email: getEnv("IDENTITY_EMAIL", "learner@vocab.local"),
			Name:  getEnv("IDENTITY_NAME", "Vocabulary Learner"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil && i > 0 {
			return i
		}
	}
	return def
}
