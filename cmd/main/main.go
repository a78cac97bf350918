package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"market-indexes/src/config"
	"market-indexes/src/logger"
	"market-indexes/src/storage"
)

// -----------------------------------------------------------------------------

func main() {
	// 1. Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file (empty for defaults)")
	flag.Parse()

	// 2. Load config
	conf, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// 3. Setup Logger
	logger.SetLevel(conf.LogLevel)
	appLogger := logger.NewLogger(conf.Name)

	// Lifecycle Management
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 4. Cache store, owned by main
	store, err := setupCacheStore(conf.MConfig, appLogger)
	if err != nil {
		appLogger.Critical("Failed to init cache store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Error("Failed to close cache store: %v", err)
		}
	}()
	go storage.RunCleanup(ctx, store, time.Duration(conf.Cache.CleanupIntervalSeconds)*time.Second, appLogger.Named("CacheCleanup"))

	// 5. Network, sources and query service
	networkManager := setupNetwork(conf.MConfig)
	svc, responder := setupService(conf.MConfig, store, networkManager, appLogger)

	// 6. Servers
	srv, grpcServer := startServers(conf.MConfig, svc, responder, appLogger)

	// 7. Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")
	cancel()
	grpcServer.GracefulStop()
	if err := srv.Stop(); err != nil {
		appLogger.Error("Server shutdown error: %v", err)
	}
	appLogger.Info("Shutdown complete.")
}
