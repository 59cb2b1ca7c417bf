// README: Entry point; loads config, wires the reply strategy, starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hestia/internal/ai"
	"hestia/internal/config"
	httptransport "hestia/internal/http"
	"hestia/internal/http/handlers"
	"hestia/internal/modules/catalog"
	"hestia/internal/modules/dialog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := catalog.NewStore(catalog.DemoOrders(), catalog.DemoNotes())
	catalogSvc := catalog.NewService(store)

	tracker := dialog.NewTracker(cfg.Session.TTL, cfg.Session.Capacity)
	dialogSvc := dialog.NewService(catalogSvc, cfg.Intents, tracker, logger)

	var replier handlers.Replier = dialogSvc
	if cfg.Reply.Mode == config.ModeGateway {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
		if err != nil {
			logger.Fatal("gateway init failed", zap.Error(err))
		}
		defer func() { _ = provider.Close() }()
		replier = ai.NewGateway(provider)
	}

	chatHandler := handlers.NewChatHandler(replier, logger)
	router := httptransport.NewRouter(chatHandler, logger, httptransport.RouterConfig{
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		RateLimitPerMin: cfg.RateLimit.PerMinute,
		RateLimitBurst:  cfg.RateLimit.Burst,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("mode", cfg.Reply.Mode))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return cfg.Build()
}
