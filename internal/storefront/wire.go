package storefront

import (
	"context"
	"database/sql"
	"fmt"

	"phonekart/internal/api"
	"phonekart/internal/config"
	"phonekart/internal/db"
	"phonekart/internal/logger"
	"phonekart/internal/metrics"
	"phonekart/internal/notify"
	"phonekart/internal/session"

	"go.uber.org/zap"
)

// OpenSessionStore picks the session persistence configured for this device.
// The returned close func releases the database when one was opened.
func OpenSessionStore(cfg *config.Config) (session.Store, func(), error) {
	switch cfg.SessionStore {
	case config.SessionStoreFile, "":
		return session.NewFileStore(cfg.SessionFile), func() {}, nil
	case config.SessionStorePostgres:
		conn, err := db.NewDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		return session.NewSQLStore(conn), func() { closeDB(conn) }, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.SessionStore)
}

func closeDB(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		logger.L().Warn("failed to close session database", zap.Error(err))
	}
}

// Bootstrap builds the App from configuration: restores the session, then
// wires the backend client with the session token. ui receives every
// notification next to the log.
func Bootstrap(ctx context.Context, cfg *config.Config, stats *metrics.BackendStats, ui notify.Notifier) (*App, func(), error) {
	store, closeStore, err := OpenSessionStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	gate := session.NewGate(store)
	if err := gate.Start(ctx); err != nil {
		closeStore()
		return nil, nil, err
	}

	client := api.NewFromConfig(cfg, gate, stats)
	n := notify.Tee(ui, notify.NewLogNotifier(logger.L()))

	logger.FromCtx(ctx).Info("storefront ready",
		zap.String("api", client.BaseURL()),
		zap.String("session_store", cfg.SessionStore),
		zap.Bool("logged_in", gate.LoggedIn()),
	)
	return New(client, gate, cfg.CatalogCacheTTL, n), closeStore, nil
}
