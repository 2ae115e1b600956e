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
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/shoplite/shoplite-go/internal/config"
	"github.com/shoplite/shoplite-go/internal/handler"
	"github.com/shoplite/shoplite-go/internal/middleware"
	"github.com/shoplite/shoplite-go/internal/repository"
	"github.com/shoplite/shoplite-go/internal/service"
	"github.com/shoplite/shoplite-go/internal/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	users := repository.NewMemoryUsers()
	products := repository.NewMemoryProducts()
	if err := repository.Seed(context.Background(), users, products); err != nil {
		slog.Error("seeding demo data failed", "error", err)
		os.Exit(1)
	}

	tokens := token.NewStore(cfg.TokenSecret, cfg.TokenExpiry)

	authService := service.NewAuthService(users, tokens)
	productService := service.NewProductService(products)

	authHandler := handler.NewAuthHandler(authService, cfg.Development())
	productHandler := handler.NewProductHandler(productService, authService, cfg.Development())

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequireJSON)
	r.Use(middleware.Sanitize)
	r.NotFound(handler.NotFound)

	r.Get("/", handler.HandleIndex)
	r.Get("/health", handler.HandleHealth)
	r.Get("/api/status", handler.HandleStatus)

	r.Get("/api/products", productHandler.HandleList)
	r.Get("/api/products/{id}", productHandler.HandleGet)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.AuthRateRPS, cfg.AuthRateBurst))
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))
		r.Get("/api/auth/profile", authHandler.HandleProfile)
		r.Get("/api/auth/users", authHandler.HandleListUsers)

		r.Post("/api/products", productHandler.HandleCreate)
		r.Put("/api/products/{id}", productHandler.HandleUpdate)
		r.Delete("/api/products/{id}", productHandler.HandleDelete)
		r.Get("/api/products/user/my-products", productHandler.HandleMyProducts)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
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

func setupLogger(cfg config.Config) {
	var h slog.Handler
	if cfg.Development() {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(h))
}
