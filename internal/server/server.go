package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"photoprint-backend/internal/config"
	"photoprint-backend/internal/database"
	"photoprint-backend/internal/faq"
	"photoprint-backend/internal/middleware"
	"photoprint-backend/internal/orders"
	"photoprint-backend/internal/photo"
	"photoprint-backend/internal/session"
	"photoprint-backend/internal/tracking"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

// Run serves the API until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ledger, ledgerName, closeLedger, err := openLedger(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLedger()

	entries, err := faq.Default()
	if err != nil {
		return fmt.Errorf("load faq: %w", err)
	}

	sessions := session.NewStore(session.Config{
		IdleTimeout:     cfg.SessionIdleTimeout,
		ResetDelay:      cfg.ResetDelay,
		NotificationTTL: cfg.NotificationTTL,
		Loader:          photo.NewLoader(cfg.MaxUploadBytes),
		FAQ:             entries,
	})

	router := NewRouter(Dependencies{
		Logger:     logger,
		Sessions:   sessions,
		Tokens:     middleware.NewSessionTokens(cfg.SessionSecret, cfg.SessionIdleTimeout, cfg.IsProduction()),
		Tracker:    tracking.NewTracker(cfg.TrackingDelay),
		Ledger:     ledger,
		LedgerName: ledgerName,

		OperatorToken: cfg.OperatorToken,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go sweepSessions(ctx, sessions, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("ledger", ledgerName))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openLedger picks Postgres when DATABASE_URL is set and falls back to memory
// if the database is unreachable.
func openLedger(ctx context.Context, cfg *config.Config, logger *zap.Logger) (orders.Ledger, string, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, orders are kept in memory")
		return orders.NewMemoryLedger(), "memory", func() {}, nil
	}

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Warn("database unavailable, orders are kept in memory", zap.Error(err))
		return orders.NewMemoryLedger(), "memory", func() {}, nil
	}

	if err := database.NewMigrator(db, logger).Run(ctx); err != nil {
		db.Close()
		return nil, "", nil, fmt.Errorf("migrations failed: %w", err)
	}
	logger.Info("migrations completed successfully")

	return orders.NewPostgresLedger(db), "postgres", func() { db.Close() }, nil
}

func sweepSessions(ctx context.Context, sessions *session.Store, logger *zap.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := sessions.Sweep(now); n > 0 {
				logger.Debug("expired sessions swept", zap.Int("count", n), zap.Int("remaining", sessions.Len()))
			}
		}
	}
}
