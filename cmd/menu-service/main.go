package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/oaktable/menu-service/internal/catalog"
	"github.com/oaktable/menu-service/internal/config"
	httpapi "github.com/oaktable/menu-service/internal/http"
	"github.com/oaktable/menu-service/internal/metrics"
	"github.com/oaktable/menu-service/internal/session"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cat, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatal("load menu", zap.Error(err))
	}
	logger.Info("menu loaded",
		zap.String("restaurant", cat.Restaurant()),
		zap.Int("items", len(cat.Items())))

	sessions := session.NewManager(cfg.SessionTTL)
	reg := metrics.NewRegistry()

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   logger,
		Cfg:      cfg,
		Catalog:  cat,
		Sessions: sessions,
		Metrics:  reg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.MenuPath != "" {
		return catalog.LoadFile(cfg.MenuPath)
	}
	return catalog.LoadDefault()
}
