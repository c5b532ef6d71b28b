package config

import "os"

type Config struct {
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	JWTSecret            string
	SyncAPIKey           string
	ServerPort           string
	HackatimeBaseURL     string
	HackatimeStartDate   string
	HackatimeBypassKey   string
	HackatimePollMinutes string
}

func Load() *Config {
	return &Config{
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "5432"),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               getEnv("DB_NAME", "buildboard"),
		JWTSecret:            getEnv("JWT_SECRET", "super-secret-key-change-me"),
		SyncAPIKey:           getEnv("SYNC_API_KEY", "sync-api-key-change-me"),
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		HackatimeBaseURL:     getEnv("HACKATIME_BASE_URL", ""),
		HackatimeStartDate:   getEnv("HACKATIME_START_DATE", "2025-06-16T00:00:00Z"),
		HackatimeBypassKey:   getEnv("HACKATIME_BYPASS_KEY", ""),
		HackatimePollMinutes: getEnv("HACKATIME_POLL_MINUTES", "15"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
