package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boopin/seo-url-analyzer/internal/analyzer"
	"github.com/boopin/seo-url-analyzer/internal/platform/config"
	"github.com/boopin/seo-url-analyzer/internal/platform/logger"
	"github.com/boopin/seo-url-analyzer/internal/platform/middleware"
	"github.com/boopin/seo-url-analyzer/internal/seo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	fetcher := seo.NewHTTPClient(cfg.FetchTimeout, cfg.AllowPrivateHosts)
	engine := seo.NewEngine(fetcher)
	aggregator := seo.NewAggregator(engine, cfg.FetchConcurrency)
	service := analyzer.NewService(aggregator, log)
	store := analyzer.NewReportStore(cfg.ReportTTL)
	transport := analyzer.NewTransport(service, store, cfg.MaxURLs, log)

	mux := http.NewServeMux()
	transport.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.RequestID(middleware.Logging(log)(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("seo analyzer listening",
		"port", cfg.Port,
		"max_urls", cfg.MaxURLs,
		"fetch_concurrency", cfg.FetchConcurrency,
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}

	log.Info("server shut down")
}
