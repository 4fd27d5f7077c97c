package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/hvackit/loadcalc/internal/climate"
	"github.com/hvackit/loadcalc/internal/config"
	"github.com/hvackit/loadcalc/internal/engine"
	"github.com/hvackit/loadcalc/internal/logging"
)

// setupLogging builds the effective config, constructs the logger, and
// attaches it to the command context. The returned cleanup closes the log
// file when one is in use.
func setupLogging(cmd *cobra.Command) (func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	loggingCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.Output = logging.OutputStderr
	}

	log, cleanup, err := logging.New(loggingCfg)
	if err != nil {
		return nil, err
	}

	logger = log.With().Str("component", "cli").Logger()

	ctx := logging.WithContext(cmd.Context(), log)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")

	return cleanup, nil
}

// loadConfig resolves the config path from flag then environment, and loads
// the effective configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("LOADCALC_CONFIG")
	}
	return config.Load(cmd.Context(), path)
}

// buildEngine assembles the climate provider (with the configured cache
// backend) and the calculation engine.
func buildEngine(cmd *cobra.Command) (*engine.Engine, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	eng, err := engine.New(provider, cfg, nil)
	if err != nil {
		return nil, nil, err
	}
	return eng, cfg, nil
}

// buildProvider wires the static climate tables behind the configured cache
// backend. Cache construction failures degrade to the uncached provider:
// the cache is an optimization, never a correctness requirement.
func buildProvider(cfg *config.Config) (climate.Provider, error) {
	static := climate.NewStaticProvider()
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour

	var store climate.Store
	var err error

	switch cfg.Cache.Backend {
	case "redis":
		if cfg.Cache.RedisAddr == "" {
			return nil, fmt.Errorf("cache backend is redis but no redis_addr configured")
		}
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		store, err = climate.NewRedisStore(client, ttl)
	case "file", "":
		dir := cfg.Cache.Dir
		if dir == "" {
			if userCache, cacheErr := os.UserCacheDir(); cacheErr == nil {
				dir = filepath.Join(userCache, "loadcalc", "climate")
			}
		}
		if dir != "" {
			store, err = climate.NewFileStore(dir, ttl)
		}
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	if err != nil || store == nil {
		logger.Warn().Err(err).Str("backend", cfg.Cache.Backend).
			Msg("climate cache unavailable, using direct lookups")
		return static, nil
	}

	return climate.NewCachedProvider(static, store), nil
}
