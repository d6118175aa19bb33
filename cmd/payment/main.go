package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/api"
	"github.com/OleksandrRym/RegularPaymentsSystem/internal/repository"
	"github.com/OleksandrRym/RegularPaymentsSystem/internal/service"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/broker"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/config"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/logger"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/postgres"
)

const (
	ReadTimeout     = 3 * time.Second
	ShutdownTimeout = 10 * time.Second
)

type entryProducer interface {
	service.Producer
	Close()
}

// @title Regular Payments API
// @version 1.0
// @description Regular payment agreements and their write-off entries
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New[config.Payment](".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(pool)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	var producer entryProducer = broker.NopProducer{}
	if cfg.Kafka.Enabled {
		producer = broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.EntriesTopic)
	}
	defer producer.Close()

	s := service.New(repo, producer)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "payment service started", "port", cfg.HTTP.Port, "kafka_enabled", cfg.Kafka.Enabled)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, ShutdownTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
