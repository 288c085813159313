package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/digitalocean/admissions-form/pkg/api"
	"github.com/digitalocean/admissions-form/pkg/clients/admissions"
	"github.com/digitalocean/admissions-form/pkg/config"
	"github.com/digitalocean/admissions-form/pkg/logger"
	"github.com/digitalocean/admissions-form/pkg/middleware"
	"github.com/digitalocean/admissions-form/pkg/views"
)

func main() {
	envErr := godotenv.Load()

	// Initialize configuration
	cfg := config.LoadConfig()

	logr, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logr.Sync()

	if envErr != nil {
		logr.Info("No .env file loaded", zap.Error(envErr))
	}

	if err := cfg.Validate(); err != nil {
		logr.Fatal("Invalid configuration", zap.Error(err))
	}

	// No timeout: the call is bounded by the inbound request context.
	admissionsClient := admissions.NewClient(cfg.AdmissionsAPIURL, nil)

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	router.Use(middleware.Logging(logr))

	templates := views.Templates()
	router.SetHTMLTemplate(templates)

	handlers := api.NewHandlers(admissionsClient, templates, logr)
	handlers.Register(router)

	logr.Info("Server starting",
		zap.String("port", cfg.Port),
		zap.String("admissions_api", cfg.AdmissionsAPIURL))
	if err := router.Run(":" + cfg.Port); err != nil {
		logr.Fatal("Error starting server", zap.Error(err))
	}
}
