package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"emotions_api/pkg/api"
	"emotions_api/pkg/clients/anthropic"
	"emotions_api/pkg/clients/openai"
	"emotions_api/pkg/config"
	"emotions_api/pkg/logging"
	"emotions_api/pkg/metrics"
	"emotions_api/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config failed: %v", err)
	}

	logging.Setup(cfg.LogLevel)

	server := echo.New()
	server.HideBanner = true
	server.Use(echomw.Recover())

	registry := metrics.NewRegistry()
	server.Use(middleware.RequestLogger(registry))

	generator, err := buildGenerator(cfg)
	if err != nil {
		log.Fatalf("model client init failed: %v", err)
	}

	handlers := api.NewHandlers(generator, registry, cfg.ModelTimeout)
	handlers.Register(server)
	server.GET("/metrics", registry.Handler)

	if err := server.Start(cfg.Address); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func buildGenerator(cfg config.Config) (api.Generator, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewClient(cfg)
	case "anthropic":
		return anthropic.NewClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
