package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DBType string
	DBPath string

	HttpHostPort string
	GrpcHostPort string

	DefaultRate  float64
	DefaultBurst int

	JwtSecret  string
	JwtTTL     time.Duration
	BcryptCost int

	UploadBackend string
	UploadDir     string
	GcsBucket     string
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadConfig reads the process environment. Call godotenv.Load first when a .env file is used.
func LoadConfig() (*Config, error) {
	var err error

	cfg := &Config{
		DBType:        envOr(EnvKeyLogifyDBType, "file"),
		DBPath:        envOr(EnvKeyLogifyDbPath, "logify.db"),
		HttpHostPort:  envOr(EnvKeyLogifyHttpHostPort, ":1080"),
		GrpcHostPort:  strings.TrimSpace(os.Getenv(EnvKeyLogifyGrpcHostPort)),
		JwtSecret:     os.Getenv(EnvKeyLogifyJwtSecret),
		UploadBackend: envOr(EnvKeyLogifyUploadBackend, "local"),
		UploadDir:     envOr(EnvKeyLogifyUploadDir, "uploads"),
		GcsBucket:     strings.TrimSpace(os.Getenv(EnvKeyLogifyGcsBucket)),
	}

	switch cfg.DBType {
	case "file", "memory":
	default:
		return nil, fmt.Errorf("unknown %s: %s", EnvKeyLogifyDBType, cfg.DBType)
	}

	if cfg.DefaultRate, err = strconv.ParseFloat(envOr(EnvKeyLogifyDefaultRate, "5"), 64); err != nil {
		return nil, fmt.Errorf("invalid %s, should be a float64 value: %w", EnvKeyLogifyDefaultRate, err)
	}

	if cfg.DefaultBurst, err = strconv.Atoi(envOr(EnvKeyLogifyDefaultBurst, "10")); err != nil {
		return nil, fmt.Errorf("invalid %s, should be an int value: %w", EnvKeyLogifyDefaultBurst, err)
	}

	ttlMinutes, err := strconv.Atoi(envOr(EnvKeyLogifyJwtTTLMinutes, "1440"))
	if err != nil || ttlMinutes <= 0 {
		return nil, fmt.Errorf("invalid %s, should be a positive int", EnvKeyLogifyJwtTTLMinutes)
	}
	cfg.JwtTTL = time.Duration(ttlMinutes) * time.Minute

	if cfg.BcryptCost, err = strconv.Atoi(envOr(EnvKeyLogifyBcryptCost, "10")); err != nil {
		return nil, fmt.Errorf("invalid %s, should be an int value: %w", EnvKeyLogifyBcryptCost, err)
	}

	if cfg.JwtSecret == "" {
		if IsProduction() {
			return nil, fmt.Errorf("%s must be set in production", EnvKeyLogifyJwtSecret)
		}
		cfg.JwtSecret = "logify-development-secret"
	}

	switch cfg.UploadBackend {
	case "local":
	case "gcs":
		if cfg.GcsBucket == "" {
			return nil, fmt.Errorf("%s is required when %s=gcs", EnvKeyLogifyGcsBucket, EnvKeyLogifyUploadBackend)
		}
	default:
		return nil, fmt.Errorf("unknown %s: %s", EnvKeyLogifyUploadBackend, cfg.UploadBackend)
	}

	return cfg, nil
}
