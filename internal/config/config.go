package config

import (
	"os"
	"strings"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	// CORSOrigins is the comma-separated allow-list from CORS_ORIGINS.
	// Empty means every origin is allowed (development default).
	CORSOrigins []string
	// AuthJWTSecret switches exam-endpoint identity from the trusted uid
	// header to verified HS256 bearer tokens when set.
	AuthJWTSecret string
}

func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8080"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", "postgres"),
		DBName:        getenv("DB_NAME", "izlek_db"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		CORSOrigins:   splitOrigins(getenv("CORS_ORIGINS", "")),
		AuthJWTSecret: getenv("AUTH_JWT_SECRET", ""),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func splitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
