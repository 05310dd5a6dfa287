package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Style StyleConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

// StyleConfig configures the remote style service boundary. The credential
// and demo flag are read once at startup and immutable for the process
// lifetime; an absent credential means unconfigured.
type StyleConfig struct {
	GeminiAPIKey    string
	DemoMode        bool
	MinCallInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Style: StyleConfig{
			GeminiAPIKey:    getEnv("GOOGLE_GEMINI_API_KEY", ""),
			DemoMode:        getEnv("USE_DEMO_MODE", "false") == "true",
			MinCallInterval: time.Duration(getEnvAsInt("STYLE_GATE_INTERVAL_MS", 2000)) * time.Millisecond,
		},
	}
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
