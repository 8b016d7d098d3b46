package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	AdminPasswordHash string
	CollegeNameEnv    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using system ENV")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminPasswordHash = GetEnv("ADMIN_PASSWORD_HASH")
	CollegeNameEnv = GetEnvOr("COLLEGE_NAME", "City College")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET not set!")
	}
	if AdminPasswordHash == "" {
		log.Println("❌ ADMIN_PASSWORD_HASH not set, admin login will always fail")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
