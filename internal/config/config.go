package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

// Auth modes for the admin gate. Static hands out one fixed shared token
// with no expiry; JWT issues signed expiring tokens.
const (
	AuthModeStatic = "static"
	AuthModeJWT    = "jwt"
)

type Config struct {
	MongoURI string
	DBName   string
	Port     string

	AdminPassword     string
	AdminPasswordHash string
	AdminToken        string
	AuthMode          string
	JWTSecret         string
	AccessTokenTTL    time.Duration

	OrderPrefix             string
	RequirePhone            bool
	RequirePaidBeforeAccept bool

	UPIID        string
	UPIPayeeName string

	RabbitURL string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = FromEnv()

	if AppEnv.AuthMode == AuthModeJWT && AppEnv.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required when AUTH_MODE=jwt")
	}
}

// FromEnv builds a Config from the current environment without touching
// the package-level AppEnv.
func FromEnv() Config {
	return Config{
		MongoURI:                getEnvOrDefault("MONGO_URI", ""),
		DBName:                  getEnvOrDefault("DB_NAME", "foodfest"),
		Port:                    getEnvOrDefault("PORT", "8080"),
		AdminPassword:           getEnvOrDefault("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash:       getEnvOrDefault("ADMIN_PASSWORD_HASH", ""),
		AdminToken:              getEnvOrDefault("ADMIN_TOKEN", "admin-authenticated"),
		AuthMode:                getAuthMode("AUTH_MODE"),
		JWTSecret:               getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL:          getDurationEnv("ACCESS_TOKEN_TTL", 720, time.Minute),
		OrderPrefix:             getEnvOrDefault("ORDER_PREFIX", "FF"),
		RequirePhone:            getBoolEnv("REQUIRE_PHONE", false),
		RequirePaidBeforeAccept: getBoolEnv("REQUIRE_PAID_BEFORE_ACCEPT", false),
		UPIID:                   getEnvOrDefault("UPI_ID", "yourname@paytm"),
		UPIPayeeName:            getEnvOrDefault("UPI_PAYEE_NAME", "FoodFest2026"),
		RabbitURL:               getEnvOrDefault("RABBITMQ_URL", ""),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getAuthMode(key string) string {
	mode := strings.ToLower(getEnvOrDefault(key, AuthModeStatic))
	if mode != AuthModeStatic && mode != AuthModeJWT {
		log.Printf("unknown %s=%q, falling back to %s", key, mode, AuthModeStatic)
		return AuthModeStatic
	}
	return mode
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
