package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBSource       string
	JWTSecret      string
	SessionTTL     time.Duration
	StaffAccessKey string

	GenAPIURL string
	GenAPIKey string

	CloudSyncInterval time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	syncSecs, _ := strconv.Atoi(getEnv("CLOUD_SYNC_INTERVAL", "45"))
	if syncSecs <= 0 {
		syncSecs = 45
	}

	return &Config{
		Port:              getEnv("PORT", "8000"),
		DBSource:          getEnv("DB_SOURCE", "brewbean.db"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		SessionTTL:        time.Duration(12) * time.Hour,
		StaffAccessKey:    getEnv("STAFF_ACCESS_KEY", "admin"),
		GenAPIURL:         getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
		GenAPIKey:         os.Getenv("GEMINI_API_KEY"),
		CloudSyncInterval: time.Duration(syncSecs) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
