// Package secretstore keeps API credentials for the CLI in an encrypted Badger database.
package secretstore

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/betbot/exrest/rest/types"
)

// Keys under which credentials are stored (after the configured prefix).
const (
	APIKeyName    = "EXREST_API_KEY"
	APISecretName = "EXREST_API_SECRET"
)

var (
	ErrNotOpened     = errors.New("secretstore: not opened")
	ErrEmptyKey      = errors.New("secretstore: key is empty")
	ErrNoCredentials = errors.New("secretstore: credentials not found")
)

// Store is a small encrypted-at-rest KV wrapper (Badger).
// Encryption is provided by Badger options (value log + key registry), not by this wrapper.
type Store struct {
	db *badger.DB
}

type OpenOptions struct {
	Path          string
	EncryptionKey []byte // 32 bytes; nil opens the DB unencrypted
	ReadOnly      bool
}

func Open(opts OpenOptions) (*Store, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, errors.New("secretstore: path is required")
	}
	bopts := badger.DefaultOptions(opts.Path).
		WithLogger(nil).
		WithReadOnly(opts.ReadOnly)
	if len(opts.EncryptionKey) > 0 {
		// Badger requires an index cache for encrypted workloads
		bopts = bopts.
			WithEncryptionKey(opts.EncryptionKey).
			WithIndexCacheSize(16 << 20)
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("secretstore: open %s: %w", opts.Path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// GetString returns the value stored under key; found is false when the key is absent.
func (s *Store) GetString(key string) (value string, found bool, err error) {
	k, err := s.key(key)
	if err != nil {
		return "", false, err
	}
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err != nil {
		return "", false, err
	}
	return value, found, nil
}

func (s *Store) SetString(key string, val string) error {
	k, err := s.key(key)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k, []byte(val))
	})
}

// Import writes every entry of kv under prefix in a single transaction.
func (s *Store) Import(prefix string, kv map[string]string) (int, error) {
	if s == nil || s.db == nil {
		return 0, ErrNotOpened
	}
	written := 0
	err := s.db.Update(func(txn *badger.Txn) error {
		for k, v := range kv {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			if err := txn.Set([]byte(prefix+k), []byte(v)); err != nil {
				return err
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

// Keys lists stored keys with the given prefix, sorted.
func (s *Store) Keys(prefix string) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotOpened
	}
	var out []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			out = append(out, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// Credentials loads the API key pair stored under prefix.
// Returns ErrNoCredentials when either half is missing.
func (s *Store) Credentials(prefix string) (*types.ApiCredentials, error) {
	key, okKey, err := s.GetString(prefix + APIKeyName)
	if err != nil {
		return nil, err
	}
	secret, okSecret, err := s.GetString(prefix + APISecretName)
	if err != nil {
		return nil, err
	}
	if !okKey || !okSecret || key == "" || secret == "" {
		return nil, fmt.Errorf("%w (prefix %q)", ErrNoCredentials, prefix)
	}
	return types.NewApiCredentials(key, secret), nil
}

func (s *Store) key(key string) ([]byte, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotOpened
	}
	k := []byte(strings.TrimSpace(key))
	if len(k) == 0 {
		return nil, ErrEmptyKey
	}
	return k, nil
}

// ParseKey expects 32 bytes (hex or base64). Returns nil if input is empty.
func ParseKey(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	// hex first so a 64-char hex string is never read as base64
	if b, err := hex.DecodeString(strings.TrimPrefix(raw, "0x")); err == nil {
		if len(b) != 32 {
			return nil, fmt.Errorf("decoded key length must be 32, got %d", len(b))
		}
		return b, nil
	}
	if b, err := base64.StdEncoding.DecodeString(raw); err == nil {
		if len(b) != 32 {
			return nil, fmt.Errorf("decoded key length must be 32, got %d", len(b))
		}
		return b, nil
	}
	return nil, errors.New("key must be base64(32 bytes) or hex(32 bytes)")
}
