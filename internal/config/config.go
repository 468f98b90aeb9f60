package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Ai       AIConfig
	Wizard   WizardConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port                 string
	Environment          string
	LogFilePath          string
	LiveLogFilePath      string
	CorsAllowedOrigins   string
	NatsURL              string
	RedisURL             string
	JWTSecret            string
	FeedbackStewardEmail string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AIConfig struct {
	LLMProvider       string // "openai" or "ollama"
	LLMModel          string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OllamaBaseURL     string
	ChatStreamTimeout time.Duration
}

type WizardConfig struct {
	SessionTTL time.Duration
	TokenTTL   time.Duration
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:                 getEnv("APP_PORT", "3000"),
			Environment:          getEnv("GO_ENV", "development"),
			LogFilePath:          getEnv("LOG_FILE_PATH", "logs/app.log"),
			LiveLogFilePath:      getEnv("LIVE_LOG_FILE_PATH", "logs/live.log"),
			CorsAllowedOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:              getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:             getEnv("REDIS_URL", "redis://localhost:6379"),
			JWTSecret:            getEnv("JWT_SECRET", "change-me"),
			FeedbackStewardEmail: getEnv("FEEDBACK_STEWARD_EMAIL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Micro Automation Hub"),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-4-turbo"),
			OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			ChatStreamTimeout: getEnvAsDuration("CHAT_STREAM_TIMEOUT", 30*time.Second),
		},
		Wizard: WizardConfig{
			SessionTTL: getEnvAsDuration("WIZARD_SESSION_TTL", time.Hour),
			TokenTTL:   getEnvAsDuration("WIZARD_TOKEN_TTL", 12*time.Hour),
		},
		Tracing: TracingConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "micro-automation-hub"),
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}
