package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBUrl         string
	JWTSecret     string
	CohereAPIKey  string
	CohereModel   string
	FaceModelsDir string
	AppEnv        string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cohereAPIKey, exists := os.LookupEnv("COHERE_API_KEY")
	if !exists || cohereAPIKey == "" {
		return nil, fmt.Errorf("COHERE_API_KEY is required")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBUrl:         getEnv("DB_URL", ""),
		JWTSecret:     jwtSecret,
		CohereAPIKey:  cohereAPIKey,
		CohereModel:   getEnv("COHERE_MODEL", "command-r-plus"),
		FaceModelsDir: getEnv("FACE_MODELS_DIR", "models"),
		AppEnv:        normalizeEnv(getEnv("APP_ENV", "production")),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
