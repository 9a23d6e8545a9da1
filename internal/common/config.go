package common

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Storage  StorageConfig
	Paths    PathsConfig
	Server   ServerConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// StorageConfig holds object-storage (S3/MinIO) configuration
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	BasePath  string // root prefix for every object key
}

// PathsConfig holds the per-company data directories
type PathsConfig struct {
	InputDir     string // raw scraper JSON, one subdir per company
	OutputDir    string // consolidated CSV/JSON/report output
	ProcessedDir string // scraper's processed JSON + downloaded claim files
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// PipelineConfig holds pipeline tuning knobs
type PipelineConfig struct {
	RecordLimit    int // 0 = unlimited; caps reconciler candidates per run
	ErrorSampleCap int // max errors kept in a processing report
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Bucket:    getEnv("S3_BUCKET", "central-de-escritos"),
			UseSSL:    getEnvAsBool("S3_USE_SSL", true),
			BasePath:  getEnv("S3_BASE_PATH", "Central_De_Escritos"),
		},
		Paths: PathsConfig{
			InputDir:     getEnv("PQR_INPUT_DIR", filepath.Join("data", "raw")),
			OutputDir:    getEnv("PQR_OUTPUT_DIR", filepath.Join("data", "consolidated")),
			ProcessedDir: getEnv("PQR_PROCESSED_DIR", filepath.Join("data", "processed")),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Pipeline: PipelineConfig{
			RecordLimit:    getEnvAsInt("PQR_RECORD_LIMIT", 0),
			ErrorSampleCap: getEnvAsInt("PQR_ERROR_SAMPLE_CAP", 50),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Storage.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "S3_ENDPOINT is required", ErrInvalidInput)
	}
	if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
		return NewAppError("CONFIG_ERROR", "S3_ACCESS_KEY and S3_SECRET_KEY are required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
