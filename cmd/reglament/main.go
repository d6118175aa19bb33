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
	"github.com/OleksandrRym/RegularPaymentsSystem/internal/clients/payments"
	"github.com/OleksandrRym/RegularPaymentsSystem/internal/reglament"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/config"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/job"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/logger"
)

const (
	ReadTimeout     = 3 * time.Second
	ShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New[config.Reglament](".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	client := payments.NewClient(cfg.PaymentService)
	scheduler := reglament.NewScheduler(client)

	jobs := job.NewService().
		TryRegisterJob(cfg.Scheduler.Enabled, "process regular payments", cfg.Scheduler.FixedRate, scheduler.ProcessPayments)
	jobs.Start(ctx)

	handler := api.NewReglamentHandler(scheduler)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      api.NewReglamentRouter(handler, mw),
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

	slog.InfoContext(ctx, "reglament started",
		"port", cfg.HTTP.Port,
		"payment_service_url", cfg.PaymentService.URL,
		"scheduler_enabled", cfg.Scheduler.Enabled,
		"fixed_rate", cfg.Scheduler.FixedRate.String(),
	)

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

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
