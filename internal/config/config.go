package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	Port    string
	GinMode string

	// GoogleClientID is the audience expected in verified ID tokens.
	GoogleClientID string
	// IdentityAPIURL is the identity provider's account management endpoint.
	IdentityAPIURL string
	// IdentityAPIKey authenticates account management calls.
	IdentityAPIKey string
	// VerifyTimeout bounds the identity verification network hop.
	VerifyTimeout time.Duration

	// AdminEmails is the allow-list granting the admin role at profile creation.
	AdminEmails []string
}

func Load() *Config {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "scheduler"),
		DBPassword:     getEnv("DB_PASSWORD", "scheduler"),
		DBName:         getEnv("DB_NAME", "course_scheduler"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		Port:           getEnv("PORT", "8000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		IdentityAPIURL: getEnv("IDENTITY_API_URL", "https://identitytoolkit.googleapis.com/v1"),
		IdentityAPIKey: getEnv("IDENTITY_API_KEY", ""),
		VerifyTimeout:  getDurationEnv("VERIFY_TIMEOUT_SECONDS", 5*time.Second),
		AdminEmails:    getListEnv("ADMIN_EMAILS"),
	}
}

// IsAdminEmail reports whether the email is on the admin allow-list.
func (c *Config) IsAdminEmail(email string) bool {
	for _, e := range c.AdminEmails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs <= 0 {
		return defaultValue
	}
	return time.Duration(secs) * time.Second
}

func getListEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
