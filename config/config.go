package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs at startup. All of it comes
// from the environment; Load fails fast when a required variable is absent.
type Config struct {
	Port              string
	MongoURI          string
	DatabaseName      string
	AccessTokenSecret string
	StripeSecretKey   string
	AllowOrigins      []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &Config{
		Port:              getenv("PORT", "5000"),
		MongoURI:          os.Getenv("MONGO_URI"),
		DatabaseName:      getenv("DB_NAME", "userProduct"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		AllowOrigins:      []string{getenv("ALLOW_ORIGINS", "http://localhost:5173")},
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
