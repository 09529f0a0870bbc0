package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	MetadataBackendMemory   = "memory"
	MetadataBackendPostgres = "postgres"
	MetadataBackendRedis    = "redis"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Metadata MetadataConfig
	Keys     APIKeys
	Ai       AIConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type MetadataConfig struct {
	Backend string // "memory", "postgres" or "redis"
}

type APIKeys struct {
	GoogleGemini string
	HuggingFace  string
}

type AIConfig struct {
	LLMProvider        string // "gemini", "ollama" or "huggingface"
	LLMModel           string // e.g. "gemini-1.5-pro", "llama3"
	OllamaBaseURL      string
	HuggingFaceBaseURL string
	QuestionLanguage   string
}

// ProviderBaseURL is the endpoint override for the configured provider.
// Gemini always talks to the public API.
func (a AIConfig) ProviderBaseURL() string {
	switch a.LLMProvider {
	case "ollama":
		return a.OllamaBaseURL
	case "huggingface":
		return a.HuggingFaceBaseURL
	default:
		return ""
	}
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", ModeDevelopment),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/assistant.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Metadata: MetadataConfig{
			Backend: getEnv("METADATA_BACKEND", MetadataBackendMemory),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:           getEnv("LLM_MODEL", "gemini-1.5-pro"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			HuggingFaceBaseURL: getEnv("HUGGINGFACE_BASE_URL", ""),
			QuestionLanguage:   getEnv("QUESTION_LANGUAGE", "English"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == ModeProduction
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
