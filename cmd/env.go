package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/prepiq/internal/config"
	"github.com/abhisek/prepiq/internal/dashboard"
	"github.com/abhisek/prepiq/internal/dataset"
	"github.com/abhisek/prepiq/internal/logger"
	"github.com/abhisek/prepiq/internal/store"
)

// env is everything a command needs, built from flags and configuration.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	kv    store.KV
	svc   *dashboard.Service
	close func() error
}

// setup resolves configuration, opens the store and wires the services.
// interactive silences console logging so it does not tear the TUI.
func setup(cmd *cobra.Command, interactive bool) (*env, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{ConfigFile: configFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		Console:    cmd.ErrOrStderr(),
		Quiet:      interactive,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	kv, closeKV, err := openKV(cmd.Context(), cfg)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	data := dataset.Default()
	if cfg.Dataset != "" {
		data, err = dataset.Load(cfg.Dataset)
		if err != nil {
			_ = closeKV()
			return nil, err
		}
		log.Debug("dataset loaded", zap.String("path", cfg.Dataset))
	}

	svc := dashboard.New(kv, data, dashboard.Sources{
		ProgressKey: cfg.Keys.Progress,
		ProblemsKey: cfg.Keys.Problems,
		MockTestKey: cfg.Keys.MockTests,
		Seed:        cfg.MockTest.Seed,
	}, dashboard.Options{
		FromProblems:   cfg.Performance.Source == config.SourceProblems,
		WeakOnly:       cfg.Roadmap.WeakOnly,
		WeakTopicCount: cfg.Roadmap.WeakTopics,
	}, log)

	return &env{
		cfg: cfg,
		log: log,
		kv:  kv,
		svc: svc,
		close: func() error {
			_ = log.Sync()
			return closeKV()
		},
	}, nil
}

func openKV(ctx context.Context, cfg *config.Config) (store.KV, func() error, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return store.NewMemoryKV(), func() error { return nil }, nil

	case config.BackendRedis:
		r, err := store.OpenRedis(ctx, store.RedisOptions{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
			Prefix:   cfg.Store.Redis.Prefix,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		return r, r.Close, nil

	default:
		path, err := resolveDBPath(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return st, st.Close, nil
	}
}

// resolveDBPath returns the database path from --db or PREPIQ_DB, then
// the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}
