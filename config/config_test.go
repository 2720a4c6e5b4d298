package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordchain/config"
	"github.com/katalvlaran/wordchain/words"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultCachePath, cfg.Cache.Path)
	assert.Equal(t, []string{words.DefaultWordList}, cfg.WordListsOrDefault())
	assert.Len(t, cfg.BuildOptions(), 1, "chunk size only; workers 0 means GOMAXPROCS")
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
word_lists: [a.txt, b.txt]
build:
  workers: 4
search:
  max_depth: 8
  timeout: 250ms
log:
  level: debug
  format: json
quiet: true
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.WordListsOrDefault())
	assert.Equal(t, 4, cfg.Build.Workers)
	assert.Equal(t, 256, cfg.Build.ChunkSize, "untouched keys keep defaults")
	assert.Equal(t, 8, cfg.Search.MaxDepth)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.Timeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Quiet)
	assert.Len(t, cfg.BuildOptions(), 2)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative workers", "build: {workers: -1}"},
		{"zero chunk", "build: {chunk_size: 0}"},
		{"bad level", "log: {level: loud}"},
		{"bad format", "log: {format: xml}"},
		{"empty word list entry", "word_lists: ['']"},
		{"cache path required", "cache: {path: ''}"},
		{"bad addr", "server: {addr: 'nope'}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("unknown_key: 1"))
	require.Error(t, err)

	cfg, err := config.Parse([]byte("cache: {path: '', disabled: true}"))
	require.NoError(t, err)
	assert.True(t, cfg.Cache.Disabled)
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "wordchain.yaml")
	require.NoError(t, os.WriteFile(p, []byte("server: {addr: '127.0.0.1:9000'}\n"), 0o600))

	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
