package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Board   BoardConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JwtSecret          string
	NatsURL            string
	RedisURL           string
}

type StoreConfig struct {
	Driver       string // "memory", "disk", "redis" or "postgres"
	Key          string
	DiskPath     string
	Connection   string
	WriteTimeout time.Duration
}

type BoardConfig struct {
	DragThreshold   float64
	DefaultFontSize string
	SessionTTL      time.Duration
	EventsTopic     string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	Environment string
	SampleRatio float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	env := getEnv("GO_ENV", "development")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        env,
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/board.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Store: StoreConfig{
			Driver:       getEnv("STORE_DRIVER", "disk"),
			Key:          getEnv("STORE_KEY", "notes"),
			DiskPath:     getEnv("STORE_DISK_PATH", "data"),
			Connection:   getEnv("DB_CONNECTION_STRING", ""),
			WriteTimeout: time.Duration(getEnvAsInt("STORE_WRITE_TIMEOUT_MS", 2000)) * time.Millisecond,
		},
		Board: BoardConfig{
			DragThreshold:   getEnvAsFloat("DRAG_THRESHOLD", 5),
			DefaultFontSize: getEnv("DEFAULT_FONT_SIZE", "16px"),
			SessionTTL:      time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
			EventsTopic:     getEnv("BOARD_EVENTS_TOPIC", "BOARD_EVENTS"),
		},
		Tracing: TracingConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			Environment: env,
			SampleRatio: getEnvAsFloat("OTEL_SAMPLE_RATIO", 1),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}
