package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config contient la configuration du serveur
type Config struct {
	Port string
	Host string
	URL  string
}

// LoadConfig charge la configuration depuis l'environnement.
// Un fichier .env est chargé s'il existe (absence non bloquante).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Host: getEnv("HOST", "0.0.0.0"),
	}
	cfg.URL = getEnv("APP_URL", "http://localhost:"+cfg.Port)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
