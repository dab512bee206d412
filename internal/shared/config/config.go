package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DataDir         string
	ResumesDir      string
	LLMProvider     string
	LLMModel        string
	OpenAIAPIKey    string
	PDFFontPath     string
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	dataDir := getEnv("DATA_DIR", "./data")

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DataDir:         dataDir,
		ResumesDir:      getEnv("RESUMES_DIR", filepath.Join(dataDir, "resumes")),
		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		LLMModel:        getEnv("LLM_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		PDFFontPath:     getEnv("PDF_FONT_PATH", "/usr/share/fonts/truetype/msttcorefonts/times.ttf"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
	}
}

// ProfilePath is the JSON file holding the singleton user profile.
func (c Config) ProfilePath() string {
	return filepath.Join(c.DataDir, "user_data.json")
}

// ChatHistoryPath is the JSON file holding saved chat sessions.
func (c Config) ChatHistoryPath() string {
	return filepath.Join(c.DataDir, "chat_history.json")
}

// ConversationsPath is the JSON file holding keyed AI conversations.
func (c Config) ConversationsPath() string {
	return filepath.Join(c.DataDir, "ai_conversations.json")
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
