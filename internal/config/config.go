package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// devJWTSecret is only acceptable outside production. The real secret is
// injected through the environment; rotating it invalidates all outstanding
// tokens, which is the intended invalidation mechanism.
const devJWTSecret = "dev-secret"

type Config struct {
	Port           string
	AppEnv         string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	JWTExpireHours int
	BcryptCost     int
	FrontendURL    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "development"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "dashboard"),
		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),
		BcryptCost:     getEnvInt("BCRYPT_COST", 10),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	if cfg.AppEnv == "production" && cfg.JWTSecret == devJWTSecret {
		log.Fatal("JWT_SECRET must be set in production")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
