package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/misterclayt0n/chrono/internal/chrono"
	"github.com/misterclayt0n/chrono/internal/config"
	"github.com/misterclayt0n/chrono/internal/feedback"
	"github.com/misterclayt0n/chrono/internal/logging"
	"github.com/misterclayt0n/chrono/internal/platform"
	"github.com/misterclayt0n/chrono/internal/storage"
)

var errNoHistory = errors.New("history database not configured (set [database] connection_string or TURSO_DATABASE_URL)")

// app bundles what every command needs: config, logger, the state repo and,
// when configured, the history database.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *storage.Storage
	repo    *storage.StateRepo
	fb      *feedback.Terminal
	closers []io.Closer
}

func loadApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("Failed to load config: %w", err)
	}

	logger, logCloser := logging.New(cfg.Log.File, cfg.SlogLevel())
	a := &app{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	if cfg.HistoryEnabled() {
		db, err := storage.Open(cfg.DB.ConnectionString, cfg.DB.AuthToken)
		if err != nil {
			// History is optional; the timer works without it.
			logger.Warn("history database unavailable", "err", err)
		} else {
			a.db = db
			a.closers = append(a.closers, db)
		}
	}

	var store storage.BlobStore = storage.NewFileStore(cfg.State.Dir)
	if cfg.State.Backend == config.BackendDB {
		if a.db != nil {
			store = storage.NewDBStore(a.db)
		} else {
			logger.Warn("state backend is db but no database is available, using files", "dir", cfg.State.Dir)
		}
	}
	a.repo = storage.NewStateRepo(store, logger)
	return a, nil
}

// controller hydrates the timer from the saved state. Tones ring on bell.
func (a *app) controller(bell io.Writer) *chrono.Controller {
	a.fb = feedback.NewTerminal(bell, a.logger)
	opts := chrono.Options{
		Feedback:  a.fb,
		KeepAwake: platform.NewKeepAwake(a.cfg.KeepAwake.Tool),
		Persister: a.repo,
		Logger:    a.logger,
	}
	if a.db != nil {
		opts.Journal = a.db
	}
	return chrono.New(a.repo.Load(), opts)
}

func (a *app) history() (*storage.Storage, error) {
	if a.db == nil {
		return nil, errNoHistory
	}
	return a.db, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i].Close()
	}
}

// printToasts echoes the controller's queued notifications.
func (a *app) printToasts() {
	if a.fb == nil {
		return
	}
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	for _, msg := range a.fb.Drain() {
		fmt.Printf("%s %s\n", cyan("»"), msg)
	}
}
