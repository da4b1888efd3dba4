// WRTeam Sport Center assistant - HTTP chat server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/wrteam/sportcenter-assistant/internal/api"
	"github.com/wrteam/sportcenter-assistant/internal/assistant"
	"github.com/wrteam/sportcenter-assistant/internal/config"
	"github.com/wrteam/sportcenter-assistant/internal/store"
	"github.com/wrteam/sportcenter-assistant/internal/support"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize stores and the operation registry.
	catalog := store.NewJSONCatalog(filepath.Join(cfg.DataDir, "products.json"))
	orders := store.NewJSONOrders(filepath.Join(cfg.DataDir, "orders.json"))
	carts := store.NewJSONCarts(filepath.Join(cfg.DataDir, "cart.json"), catalog, orders)
	kb := support.NewKnowledgeBase()
	reg := assistant.BuildRegistry(catalog, carts, orders, kb, cfg.DefaultUserID)

	inference, err := assistant.NewGeminiClient(ctx, assistant.GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	}, reg.Operations(), logger)
	if err != nil {
		slog.Error("Failed to initialize inference client", "error", err)
		os.Exit(1)
	}

	convlog, err := assistant.NewConversationLogger(assistant.ConversationLogConfig{
		Enabled:   cfg.ConversationLog.Enabled,
		Dir:       cfg.ConversationLog.Dir,
		QueueSize: cfg.ConversationLog.QueueSize,
	}, logger)
	if err != nil {
		slog.Error("Failed to initialize conversation logger", "error", err)
		os.Exit(1)
	}

	svc := assistant.NewService(inference, reg, convlog, logger, cfg.DefaultUserID, uuid.NewString())
	defer svc.Close()

	handler := api.NewHandler(svc, logger)

	// Setup router.
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(api.CORS([]string{"*"}))

	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
