package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"furnitrack/internal/auth"
	"furnitrack/internal/config"
	"furnitrack/internal/server"
	"furnitrack/internal/storage/sqlite"
	"furnitrack/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DatabasePath)

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)

	verifier := auth.NewAdminVerifier(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName)
	tokens := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenHours)*time.Hour)

	handler := server.New(store, verifier, tokens, staticDir)

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr, "url", "http://localhost"+addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
