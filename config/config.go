package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string

	AuthRequired      bool
	JWTKey            string
	AdminPasswordHash string // bcrypt hash of the admin password

	SnapshotCron string // cron spec for automatic snapshots, empty disables
	SnapshotKeep int    // how many automatic snapshots to retain

	FeedbackWebhookURL string // POST target for low-rating alerts, empty disables
	LowRatingThreshold int    // ratings at or below this trigger an alert
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		DBName: getEnv("DB_NAME", "courseadmin"),

		AuthRequired:      getEnvBool("AUTH_REQUIRED", false),
		JWTKey:            getEnv("JWT_SECRET_KEY", "defaultSecret"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		SnapshotCron: getEnv("SNAPSHOT_CRON", ""),
		SnapshotKeep: getEnvInt("SNAPSHOT_KEEP", 7),

		FeedbackWebhookURL: getEnv("FEEDBACK_WEBHOOK_URL", ""),
		LowRatingThreshold: getEnvInt("LOW_RATING_THRESHOLD", 2),
	}

	// Validate critical configuration
	if AppConfig.AuthRequired && AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AuthRequired && AppConfig.AdminPasswordHash == "" {
		log.Println("Warning: AUTH_REQUIRED is set but ADMIN_PASSWORD_HASH is empty. Login will always fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a bool or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
