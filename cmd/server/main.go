// Package main - Entry point for the rent cost API server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rent-cost/api"
	"rent-cost/internal/config"
	"rent-cost/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", config.DefaultPath(), "config file")
	addr := flag.String("addr", "", "server address (overrides config)")
	shutdownTimeout := flag.Duration("shutdown-timeout", 15*time.Second, "time allowed for in-flight requests on shutdown")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(api.Options{
		Version: version,
		Config:  cfg,
		Logger:  logging.Named("api"),
	})

	logging.Info("starting rent cost server",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
	)

	if err := server.ListenAndServe(ctx, *shutdownTimeout); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	logging.Info("server stopped")
}
