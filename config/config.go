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
	JWTKey string

	DBDriver   string // sqlite, postgres or mysql
	DBName     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string

	RedisURL string // optional; switches the eligibility cache to Redis

	AdminEmail    string
	AdminPassword string
	SaltRound     int

	GoogleReviewURL string
	DefaultQueue    string

	OTPProviderURL string
	OTPProviderKey string

	// Fallback tunables; live values come from the settings table.
	ReviewFrequencyMonths int
	SLAHours              int
	CouponDiscountPercent int
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
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBName:     getEnv("DB_NAME", "cxos.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),

		RedisURL: getEnv("REDIS_URL", ""),

		AdminEmail:    getEnv("ADMIN_EMAIL", "care@cxos.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme"),
		SaltRound:     getEnvInt("SALT_ROUND", 10),

		GoogleReviewURL: getEnv("GOOGLE_REVIEW_URL", "https://g.page/r/CbzyDhZ0C2a7EBM/review"),
		DefaultQueue:    getEnv("DEFAULT_TICKET_QUEUE", "care"),

		OTPProviderURL: getEnv("OTP_PROVIDER_URL", "https://testapi.rentbasket.com"),
		OTPProviderKey: getEnv("OTP_PROVIDER_KEY", ""),

		ReviewFrequencyMonths: getEnvInt("REVIEW_FREQUENCY_MONTHS", 6),
		SLAHours:              getEnvInt("SLA_HOURS", 24),
		CouponDiscountPercent: getEnvInt("COUPON_DISCOUNT_PERCENT", 5),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AdminPassword == "changeme" {
		log.Println("Warning: Using default ADMIN_PASSWORD. Update it in your environment.")
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
