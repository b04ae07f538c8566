// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freshmart/dynamic-pricing/internal/api"
	"github.com/freshmart/dynamic-pricing/internal/config"
	"github.com/freshmart/dynamic-pricing/internal/dataset"
	"github.com/freshmart/dynamic-pricing/internal/pricing"
	"github.com/freshmart/dynamic-pricing/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the product table. Unlike the predictor artifacts, a dataset
	// that fails to load is fatal.
	table, err := loadTable(cfg)
	if err != nil {
		log.Fatalf("Failed to load product dataset: %v", err)
	}
	logger.Log.Info().Int("products", table.Len()).Str("source", cfg.Data.Source).Msg("Product dataset loaded")

	// Load the predictor. Missing or malformed artifacts drop the
	// process into fallback-formula mode for its whole lifetime.
	predictor := pricing.LoadPredictor(cfg.Data.ModelPath, cfg.Data.ScalerPath)
	engine := pricing.NewEngine(table, predictor)
	logger.Log.Info().Str("mode", engine.Mode()).Msg("Pricing engine ready")

	// Initialize HTTP server
	router := api.NewRouter(engine, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}

func loadTable(cfg *config.Config) (*dataset.Table, error) {
	if cfg.Data.Source == "postgres" {
		db, err := dataset.NewDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return dataset.LoadPostgres(ctx, db)
	}
	return dataset.LoadCSV(cfg.Data.CSVPath)
}
