package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lectern/internal/cache"
	"github.com/abhisek/lectern/internal/config"
	"github.com/abhisek/lectern/internal/llm"
	"github.com/abhisek/lectern/internal/logger"
	"github.com/abhisek/lectern/internal/store"
	"github.com/abhisek/lectern/internal/textgen"
)

// deps holds everything a generating command needs. store is optional and
// cache falls back to cache.Nop: when either cannot be opened the command
// runs without it.
type deps struct {
	cfg    config.Config
	log    *zap.Logger
	store  *store.Store
	cache  cache.Cache
	router *textgen.Router
}

func newDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	d := &deps{cfg: cfg, log: log, cache: cache.Nop{}}
	ctx := cmd.Context()

	mw := llm.Middleware{Logger: log, CacheTTL: cfg.CacheTTL}

	if st, err := openStore(cmd, cfg); err != nil {
		log.Warn("event store unavailable, LLM calls will not be recorded", zap.Error(err))
	} else {
		d.store = st
		mw.Events = st.EventRepo()
	}

	if cfg.RedisURL != "" {
		c, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("response cache unavailable", zap.Error(err))
		} else {
			d.cache = c
			mw.Cache = c
		}
	}

	d.router = textgen.NewRouter(ctx, cfg.LLM, mw)
	log.Debug("providers configured",
		zap.String("a", d.router.Describe(textgen.HintA)),
		zap.String("b", d.router.Describe(textgen.HintB)),
	)
	return d, nil
}

func (d *deps) Close() {
	_ = d.cache.Close()
	if d.store != nil {
		_ = d.store.Close()
	}
	_ = d.log.Sync()
}

// recordAttempt stores a finished quiz. Failures are logged, never returned.
func (d *deps) recordAttempt(ctx context.Context, a *store.Attempt) {
	if d.store == nil {
		return
	}
	if err := d.store.AttemptRepo().RecordAttempt(ctx, a); err != nil {
		d.log.Warn("failed to record quiz attempt", zap.Error(err))
	}
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LECTERN_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openStoreFromEnv loads configuration and opens the store, for the
// read-only inspection commands.
func openStoreFromEnv(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return openStore(cmd, cfg)
}
