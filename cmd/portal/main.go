package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/prodsched/portal/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(context.Background(), cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer repository.Close()

	secrets, err := LoadSecrets(cfg.SecretsPath)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	service := NewService(repository, secrets, cfg.JWTSecret, sugaredLogger)
	handlers := NewHandlers(service, cfg.JWTSecret, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	api.Post("/login", handlers.Login)

	api.Get("/version", handlers.GetDataVersion)

	api.Get("/orders", handlers.GetOrders)
	api.Get("/orders/stats", handlers.GetStats)

	api.Get("/calendar/events", handlers.GetCalendarEvents)
	api.Get("/print", handlers.GetPrintView)
	api.Get("/export/excel", handlers.ExportExcel)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}
