package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/birthdaybook/internal/config"
	"github.com/mmynk/birthdaybook/internal/menu"
	"github.com/mmynk/birthdaybook/internal/metrics"
	"github.com/mmynk/birthdaybook/internal/service"
	"github.com/mmynk/birthdaybook/internal/storage"
	"github.com/mmynk/birthdaybook/internal/storage/sqlite"
	"github.com/mmynk/birthdaybook/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)
	slog.Debug("Config loaded", "config", cfg.String())

	ctx := context.Background()

	// A nil storage.Store disables Load and Save
	var store storage.Store
	if cfg.DBPath != "" {
		sqliteStore, err := sqlite.New(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to initialize storage", "error", err)
			os.Exit(1)
		}
		defer sqliteStore.Close()
		store = sqliteStore
		slog.Info("Storage initialized", "database", cfg.DBPath)
	} else {
		slog.Info("Persistence disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	if cfg.MetricsAddr != "" {
		srv := newMetricsServer(cfg.MetricsAddr, reg)
		go func() {
			slog.Info("Metrics server starting", "address", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Warn("Could not shut down metrics server", "error", err)
			}
		}()
	}

	svc := service.NewBirthdayService(store, m)
	session := menu.NewSession(svc, os.Stdin, os.Stdout, cfg.ClearScreen)
	if err := session.Run(ctx); err != nil {
		slog.Error("Session failed", "error", err)
	}
	slog.Info("Goodbye", "entries", svc.Size())
}

func newMetricsServer(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// h2c lets scrapers use HTTP/2 without TLS
	handler := h2c.NewHandler(loggingMiddleware(mux), &http2.Server{})

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
