package main

import (
	"github.com/sirupsen/logrus"

	"github.com/robord1/macronutrient-tracker-api/config"
	"github.com/robord1/macronutrient-tracker-api/controllers"
	"github.com/robord1/macronutrient-tracker-api/routes"
	"github.com/robord1/macronutrient-tracker-api/services"
	"github.com/robord1/macronutrient-tracker-api/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("loading configuration: %v", err)
	}

	log := newLogger(cfg)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("initializing database: %v", err)
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret)

	h := routes.Handlers{
		Auth:        controllers.NewAuthController(services.NewAuthService(db, tokens, log), log),
		Goals:       controllers.NewGoalController(services.NewGoalService(db, log), log),
		FoodEntries: controllers.NewFoodEntryController(services.NewFoodEntryService(db, log), log),
	}

	r := routes.SetupRouter(h, tokens)

	log.Infof("listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
