package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/locker-booking-backend/internal/app"
	"github.com/nekogravitycat/locker-booking-backend/internal/config"
	"github.com/nekogravitycat/locker-booking-backend/internal/db"
	"github.com/nekogravitycat/locker-booking-backend/internal/station"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.IsProduction)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Station inventory, fixed for the lifetime of the process
	inventory := station.Default()
	if cfg.InventoryFile != "" {
		inventory, err = station.LoadFile(cfg.InventoryFile)
		if err != nil {
			logger.Fatal("failed to load station inventory", zap.String("file", cfg.InventoryFile), zap.Error(err))
		}
	}
	logger.Info("station inventory loaded", zap.Int("stations", len(inventory.Names())))

	appCfg := app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		DataDir:      cfg.DataDir,
		LockersFile:  cfg.LockersFile,
		Inventory:    inventory,
		Logger:       logger,
	}

	// Connect DB when bookings are kept in postgres
	if cfg.StorageDriver == config.DriverPostgres {
		pool, err := db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			logger.Fatal("failed to connect to db", zap.Error(err))
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			logger.Fatal("failed to migrate db", zap.Error(err))
		}
		appCfg.DBPool = pool
	}

	container, err := app.NewContainer(appCfg)
	if err != nil {
		logger.Fatal("failed to init application", zap.Error(err))
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		logger.Info("server running",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("storage", cfg.StorageDriver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	logger.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}
