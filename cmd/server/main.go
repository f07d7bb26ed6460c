package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avolkov/storefront-service/internal/config"
	"github.com/avolkov/storefront-service/internal/infrastructure/http/server"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
	"github.com/avolkov/storefront-service/internal/infrastructure/notify"
	"github.com/avolkov/storefront-service/internal/infrastructure/persistence/postgres"
	"github.com/avolkov/storefront-service/internal/infrastructure/persistence/redis"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	flag.Parse()

	log := logger.NewLogger()
	log.Info("Starting Storefront Service")

	cfg, configErr := config.LoadConfig(*configPath)
	if configErr != nil {
		log.Fatal("Failed to load configuration", "error", configErr)
	}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())
	defer serverStopCtx()

	if migrationErr := postgres.RunMigrations(serverCtx, cfg.Database); migrationErr != nil {
		log.Fatal("Failed to run migrations", "error", migrationErr)
	}

	pgConn, dbErr := postgres.NewConnection(cfg.Database)
	if dbErr != nil {
		log.Fatal("Failed to connect to database", "error", dbErr)
	}
	defer pgConn.Close()

	redisConn, redisErr := redis.NewConnection(cfg.Redis)
	if redisErr != nil {
		log.Fatal("Failed to connect to Redis", "error", redisErr)
	}
	defer redisConn.Close()

	dbMetricsCollector := monitoring.NewDBMetricsCollector(pgConn.GetDB())
	dbMetricsCollector.StartCollecting(serverCtx, 30*time.Second)

	hub := notify.NewHub(log.WithField("component", "notifier"))
	go hub.Run(serverCtx)

	httpServer, err := server.NewServer(cfg, pgConn, redisConn, hub, log)
	if err != nil {
		log.Fatal("Failed to build server", "error", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigChan
		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		log.Info("Shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown error", "error", err)
		}

		serverStopCtx()
	}()

	log.Info("Server starting", "address", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server failed", "error", err)
	}

	<-serverCtx.Done()
	log.Info("Server stopped")
}
