package config

import (
	"os"
	"strconv"
)

// S3Config holds the settings for fetching resumes from S3.
// Empty fields leave the S3 endpoint disabled.
type S3Config struct {
	Region string
	Bucket string
}

type AppConfig struct {
	Port          string
	Environment   string
	JWTSecret     string
	MaxUploadSize int64
	S3            S3Config
}

// GetAppConfig reads configuration from environment variables with
// development defaults. The upload cap doubles as the defensive input-size
// bound for the extraction endpoints.
func GetAppConfig() AppConfig {
	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE", ""), 10, 64)
	if err != nil || maxUpload <= 0 {
		maxUpload = 10 << 20 // 10 MB
	}

	return AppConfig{
		Port:          getEnv("PORT", "8081"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		JWTSecret:     getEnv("API_JWT_SECRET", ""),
		MaxUploadSize: maxUpload,
		S3: S3Config{
			Region: getEnv("AWS_REGION", ""),
			Bucket: getEnv("AWS_S3_BUCKET", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
