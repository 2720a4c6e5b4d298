// SPDX-License-Identifier: MIT

// Package config loads the wordchain YAML configuration file.
//
// Every field has a default (see Default); a file only needs the keys it
// changes. Command-line flags are applied on top by the cli package.
//
//	word_lists: [/usr/share/dict/words]
//	cache:
//	  path: wordgraph.db
//	build:
//	  workers: 0        # 0 = GOMAXPROCS
//	  chunk_size: 256
//	search:
//	  max_depth: 0      # 0 = unlimited
//	  timeout: 5s
//	server:
//	  addr: ":8080"
//	log:
//	  level: info
//	  format: text
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordchain/wordgraph"
	"github.com/katalvlaran/wordchain/words"
)

// DefaultCachePath is where the built graph is stored unless configured.
const DefaultCachePath = "wordgraph.db"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full wordchain configuration.
type Config struct {
	WordLists []string     `yaml:"word_lists" validate:"dive,required"`
	Cache     CacheConfig  `yaml:"cache"`
	Build     BuildConfig  `yaml:"build"`
	Search    SearchConfig `yaml:"search"`
	Server    ServerConfig `yaml:"server"`
	Log       LogConfig    `yaml:"log"`
	Quiet     bool         `yaml:"quiet"`
}

// CacheConfig locates the persisted word graph.
type CacheConfig struct {
	Path     string `yaml:"path" validate:"required_if=Disabled false"`
	Disabled bool   `yaml:"disabled"`
}

// BuildConfig tunes wordgraph.Build.
type BuildConfig struct {
	Workers   int `yaml:"workers" validate:"gte=0"`
	ChunkSize int `yaml:"chunk_size" validate:"gte=1"`
}

// SearchConfig bounds individual path queries.
type SearchConfig struct {
	MaxDepth int           `yaml:"max_depth" validate:"gte=0"`
	Timeout  time.Duration `yaml:"timeout" validate:"gte=0"`
}

// ServerConfig configures the query server.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cache:  CacheConfig{Path: DefaultCachePath},
		Build:  BuildConfig{ChunkSize: wordgraph.DefaultChunkSize},
		Search: SearchConfig{Timeout: 5 * time.Second},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults and validates the result.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %q: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// WordListsOrDefault returns the configured word lists, or the system
// dictionary when none are set.
func (c *Config) WordListsOrDefault() []string {
	if len(c.WordLists) == 0 {
		return []string{words.DefaultWordList}
	}
	return c.WordLists
}

// BuildOptions translates the build section into wordgraph options.
func (c *Config) BuildOptions() []wordgraph.Option {
	var opts []wordgraph.Option
	if c.Build.Workers > 0 {
		opts = append(opts, wordgraph.WithWorkers(c.Build.Workers))
	}
	if c.Build.ChunkSize > 0 {
		opts = append(opts, wordgraph.WithChunkSize(c.Build.ChunkSize))
	}
	return opts
}
