package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/service"
	"github.com/passforge/passforge-go/internal/strength"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	estimator := strength.Zxcvbn()

	genService := service.NewGeneratorService(estimator, cfg.NameStrategy)
	genHandler := handler.NewGeneratorHandler(genService)

	analysisService := service.NewAnalysisService(estimator)
	analysisHandler := handler.NewAnalysisHandler(analysisService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/generate/password", genHandler.HandlePassword)
		r.Post("/generate/passphrase", genHandler.HandlePassphrase)
		r.Post("/generate/pin", genHandler.HandlePin)
		r.Post("/generate/name-based", genHandler.HandleNameBased)
	})

	r.Post("/check-strength", analysisHandler.HandleCheckStrength)
	r.Post("/validate", analysisHandler.HandleValidate)
	r.Post("/hash", analysisHandler.HandleHash)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "name_strategy", cfg.NameStrategy)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
