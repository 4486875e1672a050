package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/thaivocab/internal/catalog"
	"github.com/example/thaivocab/internal/config"
	"github.com/example/thaivocab/internal/database"
	"github.com/example/thaivocab/internal/logger"
	"github.com/example/thaivocab/internal/review"
	srs "github.com/example/thaivocab/internal/spaced_repetition"
)

// app bundles everything a command needs
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	store     database.Store
	scheduler *review.Scheduler
	closers   []func() error
}

func newApp(cfg *config.Config) (*app, error) {
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log}

	switch cfg.Database.Type {
	case database.TypeMemory:
		a.store = database.NewMemoryStore()
	default:
		db, err := database.Connect(cfg.Database.Type, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		a.store = database.NewSQLStore(db)
		a.closers = append(a.closers, db.Close)
	}

	cat, err := loadCatalog(cfg.Catalog, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	algo := srs.NewSM2()
	algo.MaxInterval = cfg.Review.MaxInterval

	a.scheduler = review.NewScheduler(a.store, cat,
		review.WithKey(cfg.Review.StateKey),
		review.WithLocation(cfg.Review.Location),
		review.WithStrictItems(cfg.Review.StrictItems),
		review.WithAlgorithm(algo),
		review.WithLogger(log),
	)
	return a, nil
}

func loadCatalog(cfg config.CatalogConfig, log *zap.Logger) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}

	importCfg := catalog.DefaultImportConfig()
	importCfg.FilePath = cfg.Path
	importCfg.SheetName = cfg.Sheet
	cat, result, err := catalog.Import(importCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	for _, msg := range result.Errors {
		log.Warn("skipped catalog row", zap.String("file", cfg.Path), zap.String("reason", msg))
	}
	log.Debug("catalog loaded", zap.String("file", cfg.Path), zap.Int("items", result.Imported))
	return cat, nil
}

// Close releases the store connection and flushes logs
func (a *app) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	_ = a.log.Sync()
	return firstErr
}

// withApp wires configuration, storage and the scheduler around a command
func withApp(run func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()
		return run(cmd, args, a)
	}
}
