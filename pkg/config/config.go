package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/migrmrz/social-app-backend/pkg/logger"
)

type Config struct {
	Port          string
	Env           string
	MongoURI      string
	MongoDatabase string
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		Env:           getEnv("ENV", "development"),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDatabase: getEnv("MONGO_DATABASE", "app-db"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
