// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package main is the entry point for the print-safety simulation service.
// It serves confidence scoring, filter descriptors and preview sessions over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/config"
	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/logger"
	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/preview"
	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/qr"
	transport "github.com/wso2-open-operations/common-tools/operations/print-safety/internal/transport/http"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	// Load .env before the logger so LOG_ENV and LOG_LEVEL can come from it
	envErr := godotenv.Load()

	log := logger.InitLogger()
	defer logger.Sync()

	if envErr != nil {
		log.Debug("No .env file found, using environment variables")
	}

	log.Info("Starting print-safety service",
		zap.String("version", Version),
		zap.String("git_commit", GitCommit),
	)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("Failed to load configuration", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	log.Debug("Configuration loaded",
		zap.String("port", cfg.Port),
		zap.Duration("read_timeout", cfg.ReadTimeout),
		zap.Duration("write_timeout", cfg.WriteTimeout),
		zap.Int64("max_body_size", cfg.MaxBodySize),
		zap.Int("max_sessions", cfg.MaxSessions),
		zap.Duration("session_ttl", cfg.SessionTTL),
		zap.Strings("allowed_origins", cfg.AllowedOrigins),
	)

	svc := qr.NewService(log, cfg.MinSize, cfg.MaxSize)
	store := preview.NewStore(log, cfg.MaxSessions, cfg.SessionTTL)

	h := transport.NewHandler(svc, store, log, transport.Options{
		MaxBodySize: cfg.MaxBodySize,
		MinSize:     cfg.MinSize,
		MaxSize:     cfg.MaxSize,
		DefaultSize: cfg.DefaultSize,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           transport.NewRouter(h, log, cfg.AllowedOrigins),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return store.RunSweeper(gCtx, cfg.SessionTTL/2)
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server", zap.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				log.Warn("Shutdown timeout exceeded, closing connections")
				_ = srv.Close()
			}
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Server exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	log.Info("Server exited gracefully", zap.Int("open_sessions", store.Len()))
}
