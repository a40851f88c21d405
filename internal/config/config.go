package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	DBDSN     string
	LogLevel  string
	LogFormat string // text|json
}

// Load lee .env si existe (best-effort) y después variables de entorno.
func Load() Config {
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	return Config{
		Addr:      addr,
		DBDSN:     os.Getenv("DB_DSN"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
	}
}
