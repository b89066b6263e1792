package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Manish9250/calorie-tracker-app/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port         string
	StaticDir    string
	DatabaseURL  string
	GeminiAPIKey string
	JWTSecret    string
}

// Load reads configuration from the environment (a .env file is honored when
// present). Missing credentials fail startup rather than a later request.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		StaticDir:    os.Getenv("STATIC_DIR"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./static"
	}
	return cfg, nil
}

func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.FoodLog{},
	)
	if err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return db, nil
}
