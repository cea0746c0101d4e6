// Package cache persists solved problems in BadgerDB so a repeated batch run
// can skip searches it has already done.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrOpenFailed indicates the database could not be opened.
var ErrOpenFailed = errors.New("cache: open failed")

// Config configures the store.
type Config struct {
	// Dir is the directory to store data in.
	Dir string

	// InMemory uses in-memory storage (useful for testing).
	InMemory bool

	// TTL expires entries after this long; zero keeps them forever.
	TTL time.Duration

	// KeyPrefix is added to all keys.
	KeyPrefix string
}

// Store is a BadgerDB-backed key/value cache.
type Store struct {
	db     *badger.DB
	prefix string
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

// Open opens or creates the store described by cfg.
func Open(cfg Config) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Dir).WithLogger(nil)
	if cfg.InMemory {
		opts = opts.WithDir("").WithValueDir("").WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Join(ErrOpenFailed, err)
	}

	return &Store{db: db, prefix: cfg.KeyPrefix, ttl: cfg.TTL}, nil
}

func (s *Store) key(k string) []byte {
	return []byte(s.prefix + "solved:" + k)
}

// Get returns the value stored under key; found is false on a miss.
func (s *Store) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		s.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get: %w", err)
	}

	s.hits.Add(1)
	return value, true, nil
}

// Set stores value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(s.key(key), value)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		return txn.SetEntry(e)
	})
}

// GetJSON decodes the value under key into v.
func (s *Store) GetJSON(ctx context.Context, key string, v any) (bool, error) {
	data, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func (s *Store) SetJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}

// Stats returns hit and miss counts since Open.
func (s *Store) Stats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key derives a stable key from the JSON encoding of parts.
func Key(parts ...any) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, p := range parts {
		if err := enc.Encode(p); err != nil {
			return "", fmt.Errorf("cache: key: %w", err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
