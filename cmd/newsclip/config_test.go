package main_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	main "github.com/fwojciec/newsclip/cmd/newsclip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("parses all fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
db_path: /tmp/test.db
fetch_timeout: 15s
user_agent: newsclip/1.0
concurrency: 5
cache_ttl: 10m
learn_content: true
rate_per_domain: 2.5
`), 0644))

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/test.db", cfg.DBPath)
		assert.Equal(t, 15*time.Second, cfg.FetchTimeout.Duration())
		assert.Equal(t, "newsclip/1.0", cfg.UserAgent)
		assert.Equal(t, 5, cfg.Concurrency)
		assert.Equal(t, 10*time.Minute, cfg.CacheTTL.Duration())
		assert.True(t, cfg.LearnContent)
		assert.Equal(t, 2.5, cfg.RatePerDomain)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("concurrency: 8\n"), 0644))

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Concurrency)
		assert.Equal(t, 1.0, cfg.RatePerDomain)
		assert.Zero(t, cfg.FetchTimeout.Duration())
	})

	t.Run("explicitly named missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})

	t.Run("invalid duration is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("fetch_timeout: soon\n"), 0644))

		_, err := main.LoadConfig(path)

		require.Error(t, err)
	})
}
