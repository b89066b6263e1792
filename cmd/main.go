package main

import (
	"context"

	"github.com/Manish9250/calorie-tracker-app/config"
	"github.com/Manish9250/calorie-tracker-app/routes"
	"github.com/Manish9250/calorie-tracker-app/services"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	generator, err := services.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer generator.Close()

	r := routes.SetupRouter(db, services.NewNutritionAI(generator), cfg.StaticDir)

	log.Infof("Starting server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
