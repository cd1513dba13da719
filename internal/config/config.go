package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found — falling back to system environment variables")
	} else {
		log.Println("✅ .env file loaded")
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Port() string {
	return getenv("PORT", "8080")
}

func BaseURL() string {
	return getenv("BASE_URL", "http://localhost:"+Port())
}

// SessionSecret signs the session cookie. The default is only suitable
// for local development.
func SessionSecret() string {
	return getenv("SESSION_SECRET", "dev-session-secret")
}

// JWTSecret signs the remember-me token.
func JWTSecret() []byte {
	return []byte(getenv("JWT_SECRET", "dev-jwt-secret"))
}
