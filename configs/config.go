package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource   string
	Port       string
	JWTSecret  string
	JWTTTL     time.Duration
	CORSOrigin string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		DBSource:   getEnv("DB_SOURCE", "scsp.db"),
		Port:       getEnv("PORT", "5000"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		JWTTTL:     time.Duration(24) * time.Hour,
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
