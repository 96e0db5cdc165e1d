package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/lexibridge/internal/adapter/provider/freedict"
	"github.com/heartmarshall/lexibridge/internal/adapter/provider/mymemory"
	"github.com/heartmarshall/lexibridge/internal/adapter/upstream"
	"github.com/heartmarshall/lexibridge/internal/config"
	"github.com/heartmarshall/lexibridge/internal/history"
	"github.com/heartmarshall/lexibridge/internal/service/lookup"
	"github.com/heartmarshall/lexibridge/internal/transport/middleware"
	"github.com/heartmarshall/lexibridge/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// providers and the lookup service, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("breaker_enabled", cfg.Upstream.BreakerEnabled),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// NewHandler builds the full HTTP handler: providers, history, lookup
// service, routes and middleware.
func NewHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	dictGateway := upstream.New("freedict", cfg.Upstream, logger)
	transGateway := upstream.New("mymemory", cfg.Upstream, logger)

	dictProvider := freedict.NewProvider(cfg.Dictionary.BaseURL, dictGateway, logger)
	transProvider := mymemory.NewProvider(cfg.Translation.BaseURL, cfg.Translation.Email, transGateway, logger)

	buf := history.NewBuffer(cfg.Lookup.HistoryCapacity)
	svc := lookup.NewService(logger, dictProvider, transProvider, buf)

	router := rest.NewRouter(
		rest.NewLookupHandler(svc, cfg.Lookup.DefaultSource, cfg.Lookup.DefaultTarget, logger),
		rest.NewHealthHandler(buf, BuildVersion(), dictGateway, transGateway),
	)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
