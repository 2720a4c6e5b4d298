// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/wordchain/wordgraph"
)

// FormatVersion is written to meta/version.
const FormatVersion = "1"

// Sentinel errors for cache operations.
var (
	// ErrEmpty indicates no complete graph is stored.
	ErrEmpty = errors.New("cache: no graph stored")

	// ErrStale indicates the stored graph was built from a different vocabulary.
	ErrStale = errors.New("cache: stored graph does not match vocabulary")

	// ErrVersion indicates an unknown storage format.
	ErrVersion = errors.New("cache: unsupported format version")

	// ErrCorrupt indicates stored data that cannot form a valid graph.
	ErrCorrupt = errors.New("cache: stored graph is corrupt")
)

var (
	keyVersion     = []byte("meta/version")
	keyFingerprint = []byte("meta/fingerprint")
	keyWords       = []byte("meta/words")
	prefixWord     = []byte("w/")
)

// Config configures Open.
type Config struct {
	// Path is the BadgerDB directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in memory (tests).
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// MustExist makes Open fail with ErrEmpty instead of creating a
	// missing store. Used when the store is only read.
	MustExist bool

	// Logger receives BadgerDB's own log output. Nil disables it.
	Logger *slog.Logger
}

// DefaultConfig returns a persistent configuration rooted at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for a throwaway in-memory store.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Store is a graph cache backed by one BadgerDB instance.
// It is safe for concurrent use; concurrent Saves are not ordered.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the store described by cfg.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("cache: path is required for a persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.MustExist {
			if _, err := os.Stat(cfg.Path); errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s does not exist", ErrEmpty, cfg.Path)
			}
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("cache: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open badger: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored graph with g, tagged with the vocabulary
// fingerprint.
func (s *Store) Save(ctx context.Context, g *wordgraph.Graph, fingerprint string) error {
	if err := s.db.Update(func(txn *badger.Txn) error {
		for _, k := range [][]byte{keyVersion, keyFingerprint, keyWords} {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("cache: clear metadata: %w", err)
	}
	if err := s.dropWords(ctx); err != nil {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	adj := g.Adjacency()
	for _, w := range g.Words() {
		if err := ctx.Err(); err != nil {
			return err
		}
		val, err := json.Marshal(adj[w])
		if err != nil {
			return fmt.Errorf("cache: encode %q: %w", w, err)
		}
		if err := wb.Set(wordKey(w), val); err != nil {
			return fmt.Errorf("cache: write %q: %w", w, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("cache: flush: %w", err)
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(keyWords, []byte(strconv.Itoa(g.Len()))); err != nil {
			return err
		}
		if err := txn.Set(keyFingerprint, []byte(fingerprint)); err != nil {
			return err
		}
		return txn.Set(keyVersion, []byte(FormatVersion))
	})
	if err != nil {
		return fmt.Errorf("cache: write metadata: %w", err)
	}

	return nil
}

// dropWords deletes every w/ key.
func (s *Store) dropWords(ctx context.Context) error {
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefixWord
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache: scan words: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := wb.Delete(k); err != nil {
			return fmt.Errorf("cache: delete %q: %w", k, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("cache: flush deletes: %w", err)
	}

	return nil
}

// Fingerprint returns the fingerprint of the stored graph, or ErrEmpty.
func (s *Store) Fingerprint() (string, error) {
	var fp string
	err := s.db.View(func(txn *badger.Txn) error {
		v, err := getString(txn, keyFingerprint)
		fp = v
		return err
	})
	return fp, err
}

// Load reads the stored graph and its fingerprint.
func (s *Store) Load(ctx context.Context) (*wordgraph.Graph, string, error) {
	var (
		fp  string
		adj map[string][]string
	)
	err := s.db.View(func(txn *badger.Txn) error {
		version, err := getString(txn, keyVersion)
		if err != nil {
			return err
		}
		if version != FormatVersion {
			return fmt.Errorf("%w: %q", ErrVersion, version)
		}
		if fp, err = getString(txn, keyFingerprint); err != nil {
			return err
		}
		countStr, err := getString(txn, keyWords)
		if err != nil {
			return err
		}
		count, err := strconv.Atoi(countStr)
		if err != nil {
			return fmt.Errorf("%w: word count %q", ErrCorrupt, countStr)
		}

		adj = make(map[string][]string, count)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefixWord
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			w := string(item.Key()[len(prefixWord):])
			var nbrs []string
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &nbrs)
			}); err != nil {
				return fmt.Errorf("%w: decode %q: %v", ErrCorrupt, w, err)
			}
			adj[w] = nbrs
		}
		if len(adj) != count {
			return fmt.Errorf("%w: %d words stored, %d expected", ErrCorrupt, len(adj), count)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	g, err := wordgraph.FromAdjacency(adj)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return g, fp, nil
}

// LoadMatching loads the stored graph only if it was built from the
// vocabulary with the given fingerprint; otherwise it returns ErrStale.
func (s *Store) LoadMatching(ctx context.Context, fingerprint string) (*wordgraph.Graph, error) {
	stored, err := s.Fingerprint()
	if err != nil {
		return nil, err
	}
	if stored != fingerprint {
		return nil, ErrStale
	}
	g, _, err := s.Load(ctx)

	return g, err
}

func wordKey(w string) []byte {
	k := make([]byte, 0, len(prefixWord)+len(w))
	k = append(k, prefixWord...)
	return append(k, w...)
}

// getString reads key as a string, mapping a missing key to ErrEmpty.
func getString(txn *badger.Txn, key []byte) (string, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", ErrEmpty
	}
	if err != nil {
		return "", fmt.Errorf("cache: get %s: %w", key, err)
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return "", fmt.Errorf("cache: read %s: %w", key, err)
	}
	return string(val), nil
}
