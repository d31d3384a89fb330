package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"uadm/internal/stubserver"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	addr := envOrDefault("UADM_STUB_ADDR", ":5000")
	signingKey := envOrDefault("UADM_STUB_SIGNING_KEY", "dev-secret-key-change-in-production")

	handler := stubserver.New(stubserver.Config{
		SigningKey: []byte(signingKey),
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("stub admin backend listening", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
