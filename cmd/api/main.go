package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"gudang-gateway/internal/config"
	"gudang-gateway/internal/httpserver"
	"gudang-gateway/internal/pos"
	authsvc "gudang-gateway/internal/service/auth"
	catalogsvc "gudang-gateway/internal/service/catalog"
	categorysvc "gudang-gateway/internal/service/category"
	statssvc "gudang-gateway/internal/service/stats"
	suppliersvc "gudang-gateway/internal/service/supplier"
	"gudang-gateway/internal/upstream"
)

func setupLogger(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	setupLogger(cfg.Log.Level)

	client, err := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log.WithField("component", "upstream"))
	if err != nil {
		log.WithError(err).Fatal("init upstream client")
	}

	authService := authsvc.New(client)
	statsService := statssvc.New(client, cfg.POS.LowStockThreshold)
	catalogService := catalogsvc.New(client)
	categoryService := categorysvc.New(client)
	supplierService := suppliersvc.New(client)
	sessions := pos.NewSessions(client, client, log.WithField("component", "pos"), cfg.POS.SessionTTL)

	srv := httpserver.New(cfg.Server.Addr, log.WithField("component", "http"), httpserver.Deps{
		Pinger:   client,
		Auth:     authService,
		Stats:    statsService,
		Catalog:  catalogService,
		Category: categoryService,
		Supplier: supplierService,
		POS:      sessions,
	}, cfg.CORS.AllowOrigins)

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.WithField("signal", sig.String()).Info("shutting down")
	case err := <-serverErr:
		log.WithError(err).Error("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	} else {
		log.Info("server stopped")
	}
}
