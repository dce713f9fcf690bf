package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodie-hub/config"
	httpapi "foodie-hub/order-svc/internal/api/http"
	"foodie-hub/order-svc/internal/logger"
	"foodie-hub/order-svc/internal/service"
	"foodie-hub/order-svc/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.New("order-svc", cfg.LogLevel)

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	schemaCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := storage.EnsureSchema(schemaCtx, db); err != nil {
		cancel()
		log.Error("failed to ensure schema", logger.Err(err))
		os.Exit(1)
	}
	cancel()

	repo := storage.NewPostgresRepository(db)

	opts := []service.OrderOption{
		service.WithLogger(log),
		service.WithQRGenerator(service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}),
	}
	if cfg.RedisEnabled() {
		client := config.MustInitRedis(cfg)
		defer client.Close()
		opts = append(opts, service.WithSubmissionGuard(storage.NewRedisSubmissionGuard(client, cfg.IdempotencyTTL)))
		log.Info("idempotency guard enabled", "redis", cfg.RedisHost+":"+cfg.RedisPort)
	}
	if cfg.KafkaEnabled() {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		opts = append(opts, service.WithEventPublisher(storage.NewKafkaPublisher(writer)))
		log.Info("order events enabled", "broker", cfg.KafkaBroker, "topic", cfg.OrdersTopic)
	}

	handler := &httpapi.Handler{
		Restaurants: service.NewRestaurantService(repo, repo),
		Menu:        service.NewMenuService(repo, repo),
		Customers:   service.NewCustomerService(repo),
		Orders:      service.NewOrderService(repo, repo, repo, opts...),
		Reports:     service.NewReportService(repo, repo),
		DB:          db,
		UploadDir:   cfg.UploadDir,
		Logger:      log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpapi.NewServer(cfg.HTTPAddr, httpapi.NewRouter(handler))
	if err := httpapi.Serve(ctx, srv, log); err != nil {
		log.Error("server stopped", logger.Err(err))
		os.Exit(1)
	}
}
