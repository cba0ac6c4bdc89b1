package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"promocards/internal/config"
	"promocards/internal/db"
	"promocards/internal/handler"
	"promocards/internal/model"
	"promocards/internal/polish"
	"promocards/internal/repository"
	"promocards/internal/router"
	"promocards/internal/service"
	"promocards/internal/storage"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.Card{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	imageStore, err := storage.New(storage.Options{
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		Bucket:        cfg.S3Bucket,
		UseSSL:        cfg.S3UseSSL,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("object store init: %v", err)
	}

	polisher := polish.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY not set, /polish will be unavailable")
	}

	cardRepo := repository.NewCardRepository(gormDB)
	cardService := service.NewCardService(cardRepo, imageStore)

	cardHandler := handler.NewCardHandler(cardService, service.NewUploadValidator())
	polishHandler := handler.NewPolishHandler(polisher)

	router.Register(e, cfg, cardHandler, polishHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
