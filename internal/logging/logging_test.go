package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, FormatConsole, cfg.Format)
	assert.Equal(t, OutputStderr, cfg.Output)
	assert.False(t, cfg.Caller)
}

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		logger, cleanup, err := New(DefaultConfig())
		require.NoError(t, err)
		defer cleanup() //nolint:errcheck

		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("UnknownLevelFallsBackToInfo", func(t *testing.T) {
		logger, cleanup, err := New(Config{Level: "shouting"})
		require.NoError(t, err)
		defer cleanup() //nolint:errcheck

		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("DebugLevel", func(t *testing.T) {
		logger, cleanup, err := New(Config{Level: "debug"})
		require.NoError(t, err)
		defer cleanup() //nolint:errcheck

		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	})

	t.Run("FileOutput", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "run.log")
		logger, cleanup, err := New(Config{
			Level:  "info",
			Format: FormatJSON,
			Output: OutputFile,
			File:   path,
		})
		require.NoError(t, err)

		logger.Info().Str("component", "test").Msg("hello")
		require.NoError(t, cleanup())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"component":"test"`)
		assert.Contains(t, string(data), "hello")
	})

	t.Run("FileOutputWithoutPath", func(t *testing.T) {
		_, _, err := New(Config{Output: OutputFile})
		assert.Error(t, err)
	})
}

func TestContextRoundTrip(t *testing.T) {
	logger, cleanup, err := New(Config{Level: "warn"})
	require.NoError(t, err)
	defer cleanup() //nolint:errcheck

	ctx := WithContext(context.Background(), logger)
	got := FromContext(ctx)
	assert.Equal(t, zerolog.WarnLevel, got.GetLevel())

	// No logger attached: a disabled default, never a nil deref.
	fallback := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, fallback.GetLevel())
}
