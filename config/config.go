// Package config handles database setup and environment configuration.
package config

import (
	"os"
	"strconv"
)

// Config holds all configurable values for the app.
type Config struct {
	Port           string
	DBURL          string
	FrontendOrigin string

	JWTSecret      string
	JWTExpiryHours int

	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string

	UploadDir string

	StatsBroadcastCron string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
}

// Load reads environment variables and populates a Config struct.
func Load() *Config {
	expiryHours := 24
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DBURL:          os.Getenv("DB_URL"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiryHours: expiryHours,

		AdminEmail:        getEnv("ADMIN_EMAIL", "pkgupta93100@gmail.com"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "prashant123"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		StatsBroadcastCron: getEnv("STATS_BROADCAST_CRON", "@every 1m"),

		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
