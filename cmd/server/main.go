package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/farhanaly/account-transfer-service/internal/config"
	"github.com/farhanaly/account-transfer-service/internal/events"
	"github.com/farhanaly/account-transfer-service/internal/events/kafka"
	"github.com/farhanaly/account-transfer-service/internal/handler"
	"github.com/farhanaly/account-transfer-service/internal/interfaces"
	"github.com/farhanaly/account-transfer-service/internal/middleware"
	"github.com/farhanaly/account-transfer-service/internal/storage/memory"
	"github.com/farhanaly/account-transfer-service/internal/telemetry"
	"github.com/farhanaly/account-transfer-service/internal/transfer"
)

func main() {
	cfg := config.Load()

	logger := telemetry.InitLogger(cfg.ServiceName)

	shutdownTracer, err := telemetry.InitTracer(cfg.ServiceName, cfg.OTLPEndpoint, cfg.Environment)
	if err != nil {
		logger.Error("failed to initialize tracer", slog.Any("error", err))
		os.Exit(1)
	}
	defer shutdownTracer()

	// Balances render as JSON numbers, matching existing clients.
	decimal.MarshalJSONWithoutQuotes = true

	store := memory.NewAccountStore()

	var publisher interfaces.EventPublisher
	if cfg.Kafka.Enabled {
		kafkaPublisher := kafka.NewPublisher(cfg.Kafka.Brokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	} else {
		publisher = events.NewLogPublisher(logger)
	}

	engine := transfer.NewEngine(store, publisher, cfg.Kafka.Topic)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Tracing())
	r.Use(middleware.Prometheus())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := handler.NewHandler(store, engine)
	h.RegisterRoutes(r)

	logger.Info("starting server",
		slog.String("addr", cfg.HTTPAddr),
		slog.Bool("kafka_enabled", cfg.Kafka.Enabled),
	)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
