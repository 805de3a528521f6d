package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iByteABit256/MRN-Generator/internal/config"
	"github.com/iByteABit256/MRN-Generator/internal/interfaces/rest/handlers"
	"github.com/iByteABit256/MRN-Generator/internal/interfaces/rest/middleware"
	"github.com/iByteABit256/MRN-Generator/internal/metrics"
	"github.com/iByteABit256/MRN-Generator/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting mrn generator service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"max_batch_size", cfg.Generator.MaxBatchSize,
	)

	m := metrics.New(prometheus.DefaultRegisterer)

	now := time.Now()
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(os.Getpid())))

	generator := service.NewGenerator(rng, m, logger, cfg.Generator.MaxBatchSize, time.Now)

	h := handlers.NewMrnHandler(generator, logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Timeout(cfg.Server.ReadTimeout))

	h.RegisterRoutes(router)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
