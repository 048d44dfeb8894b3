package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"gudang-gateway/internal/config"
	"gudang-gateway/internal/seed"
	"gudang-gateway/internal/upstream"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	client, err := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log.WithField("component", "seed"))
	if err != nil {
		log.WithError(err).Fatal("init upstream client")
	}

	username := os.Getenv("SEED_USERNAME")
	password := os.Getenv("SEED_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("SEED_USERNAME and SEED_PASSWORD are required")
	}

	ctx := context.Background()
	token, err := client.Login(ctx, username, password)
	if err != nil {
		log.WithError(err).Fatal("login")
	}

	if err := seed.Apply(upstream.ContextWithToken(ctx, token), client); err != nil {
		log.WithError(err).Fatal("seed apply")
	}

	log.Info("seed applied")
}
