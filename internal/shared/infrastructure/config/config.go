package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultMaxUploadMB is used when MAX_UPLOAD_MB is unset or invalid
const DefaultMaxUploadMB = 10

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	FileStorage FileStorageConfig
	Upload      UploadConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

// FileStorageConfig holds object store configuration.
// There are no credential fields: the store authenticates with the
// execution identity of the host.
type FileStorageConfig struct {
	BucketName     string
	Region         string
	Endpoint       string
	PublicEndpoint string
	UseSSL         bool
}

// UploadConfig holds upload limits
type UploadConfig struct {
	MaxUploadMB int
}

// MaxBytes returns the upload limit in bytes
func (c UploadConfig) MaxBytes() int64 {
	return int64(c.MaxUploadMB) * 1024 * 1024
}

// Load reads configuration from a .env file (if present) and environment variables
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		},
		FileStorage: FileStorageConfig{
			BucketName:     getEnv("BUCKET_NAME", "fastapi-photo-app-nik"),
			Region:         getEnv("AWS_REGION", "us-east-1"),
			Endpoint:       getEnv("S3_ENDPOINT", ""),
			PublicEndpoint: getEnv("S3_PUBLIC_ENDPOINT", getEnv("S3_ENDPOINT", "")),
			UseSSL:         getEnv("S3_USE_SSL", "true") == "true",
		},
		Upload: UploadConfig{
			MaxUploadMB: parsePositiveInt(getEnv("MAX_UPLOAD_MB", ""), DefaultMaxUploadMB),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parsePositiveInt parses a positive integer or returns a default value
func parsePositiveInt(value string, defaultValue int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
