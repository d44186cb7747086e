package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.EndpointAddr = getEnv("ADDRESS", cfg.EndpointAddr)
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.SecretKey = getEnv("JWT_SECRET", cfg.SecretKey)
	cfg.TokenValidityDuration = getEnvDuration("JWT_TTL", cfg.TokenValidityDuration)

	cfg.S3RootUser = getEnv("S3_ROOT_USER", cfg.S3RootUser)
	cfg.S3RootPassword = getEnv("S3_ROOT_PASSWORD", cfg.S3RootPassword)
	cfg.S3Bucket = getEnv("S3_BUCKET", cfg.S3Bucket)
	cfg.S3Region = getEnv("S3_REGION", cfg.S3Region)
	cfg.S3BaseEndpoint = getEnv("S3_BASE_ENDPOINT", cfg.S3BaseEndpoint)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// Bare integers are accepted as hours.
	if h, err := strconv.Atoi(v); err == nil {
		return time.Duration(h) * time.Hour
	}
	return fallback
}
