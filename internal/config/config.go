package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string

	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3UseSSL        bool
	S3PublicBaseURL string

	// FrontendOrigins is the cross-origin allow-list; empty means
	// unrestricted.
	FrontendOrigins []string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

// Load builds Config from environment with sensible defaults. A .env file is
// honored when present and silently skipped when not.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/promocards?charset=utf8mb4&parseTime=True&loc=Local"),
		S3Endpoint:      getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3Bucket:        getEnv("S3_BUCKET", "card-images"),
		S3UseSSL:        getEnv("S3_USE_SSL", "false") == "true",
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		FrontendOrigins: splitOrigins(os.Getenv("FRONTEND_ORIGINS")),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
