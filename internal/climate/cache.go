package climate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// cacheFileExtension is the file extension used for cache entries.
const cacheFileExtension = ".json"

// TTL bounds for climate cache entries. Climate design data changes rarely,
// so the default is generous.
const (
	DefaultTTL = 24 * time.Hour
	MinTTL     = time.Minute
	MaxTTL     = 7 * 24 * time.Hour
)

// Common cache errors.
var (
	ErrCacheNotFound   = errors.New("climate cache entry not found")
	ErrCacheExpired    = errors.New("climate cache entry expired")
	ErrInvalidCacheKey = errors.New("climate cache key cannot be empty")
	ErrInvalidTTL      = fmt.Errorf("climate cache TTL must be between %s and %s", MinTTL, MaxTTL)
)

// Store is the key-value cache contract used by CachedProvider. A store must
// tolerate concurrent readers; failures must be returned, never panic, so
// the provider can fall back to direct lookup.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// entry is the on-disk representation of a FileStore cache entry.
type entry struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// expired reports whether the entry's TTL has lapsed.
func (e *entry) expired() bool {
	return time.Now().After(e.ExpiresAt)
}

// FileStore is a file-backed TTL cache storing one JSON file per location.
// Thread-safe for concurrent access.
type FileStore struct {
	directory string
	ttl       time.Duration

	// mu protects concurrent file operations.
	mu sync.RWMutex
}

// NewFileStore creates a file-backed store rooted at directory, creating it
// when missing. A zero ttl selects DefaultTTL; out-of-range TTLs fail.
func NewFileStore(directory string, ttl time.Duration) (*FileStore, error) {
	if directory == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if ttl < MinTTL || ttl > MaxTTL {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTTL, ttl)
	}

	if err := os.MkdirAll(directory, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileStore{directory: directory, ttl: ttl}, nil
}

// Get retrieves a cache entry's payload by key.
// Returns ErrCacheNotFound if the entry doesn't exist and ErrCacheExpired if
// its TTL has lapsed (the expired file is removed asynchronously).
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filePath := s.keyToFilePath(key)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var e entry
	if unmarshalErr := json.Unmarshal(data, &e); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", unmarshalErr)
	}

	if e.expired() {
		go func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			_ = os.Remove(filePath)
		}()
		return nil, ErrCacheExpired
	}

	return e.Data, nil
}

// Set stores data under key, overwriting any existing entry.
func (s *FileStore) Set(_ context.Context, key string, data []byte) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e := entry{
		Key:       key,
		Data:      json.RawMessage(data),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	entryData, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	filePath := s.keyToFilePath(key)

	// Write to temporary file first, then rename for atomicity.
	tempPath := filePath + ".tmp"
	if writeErr := os.WriteFile(tempPath, entryData, 0600); writeErr != nil {
		return fmt.Errorf("failed to write cache file: %w", writeErr)
	}
	if renameErr := os.Rename(tempPath, filePath); renameErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename cache file: %w", renameErr)
	}

	return nil
}

// Delete removes a cache entry by key. Idempotent.
func (s *FileStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.keyToFilePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}

// CleanupExpired removes all expired cache entries. Useful for periodic
// maintenance; unreadable or invalid files are skipped.
func (s *FileStore) CleanupExpired() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, dirEntry := range entries {
		if dirEntry.IsDir() || filepath.Ext(dirEntry.Name()) != cacheFileExtension {
			continue
		}

		filePath := filepath.Join(s.directory, dirEntry.Name())
		data, readErr := os.ReadFile(filePath)
		if readErr != nil {
			continue
		}

		var e entry
		if unmarshalErr := json.Unmarshal(data, &e); unmarshalErr != nil {
			continue
		}

		if e.expired() {
			_ = os.Remove(filePath)
		}
	}

	return nil
}

// Count returns the number of cache entries (including expired ones).
func (s *FileStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}

	count := 0
	for _, dirEntry := range entries {
		if !dirEntry.IsDir() && filepath.Ext(dirEntry.Name()) == cacheFileExtension {
			count++
		}
	}
	return count, nil
}

// keyToFilePath converts a cache key to a filesystem-safe path.
func (s *FileStore) keyToFilePath(key string) string {
	safeKey := strings.ReplaceAll(key, "/", "_")
	safeKey = strings.ReplaceAll(safeKey, "\\", "_")
	safeKey = strings.ReplaceAll(safeKey, ":", "_")
	return filepath.Join(s.directory, safeKey+cacheFileExtension)
}
