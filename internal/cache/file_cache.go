package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
)

// FileCache stores widget service responses on disk, one file per request URL
type FileCache struct {
	dir   string
	ttl   time.Duration
	clock clockwork.Clock
}

// cacheEntry represents a cached item with expiration
type cacheEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Option configures a FileCache
type Option func(*FileCache)

// WithClock replaces the wall clock used for expiry
func WithClock(clock clockwork.Clock) Option {
	return func(c *FileCache) {
		c.clock = clock
	}
}

// NewFileCache creates a new file cache, creating dir if needed
func NewFileCache(dir string, ttl time.Duration, opts ...Option) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}

	c := &FileCache{
		dir:   dir,
		ttl:   ttl,
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/crtm, falling back to ~/.cache/crtm
func DefaultCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "crtm")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "crtm-cache")
	}

	return filepath.Join(home, ".cache", "crtm")
}

// Dir returns the cache directory
func (c *FileCache) Dir() string {
	return c.dir
}

func (c *FileCache) keyToFilename(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".json")
}

// readEntry loads an entry, removing unreadable or expired files
func (c *FileCache) readEntry(filename string) (*cacheEntry, bool) {
	// #nosec G304 -- filename is derived from hash of cache key or read from the cache dir
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(filename)
		return nil, false
	}

	if !c.clock.Now().Before(entry.ExpiresAt) {
		_ = os.Remove(filename)
		return nil, false
	}
	return &entry, true
}

// Get retrieves a value from the cache
func (c *FileCache) Get(key string) ([]byte, bool) {
	entry, ok := c.readEntry(c.keyToFilename(key))
	if !ok || entry.Key != key {
		return nil, false
	}
	return entry.Data, true
}

// Set stores a value in the cache. The file is written to a temporary name
// and renamed so concurrent readers never see a partial entry.
func (c *FileCache) Set(key string, value []byte) error {
	entry := cacheEntry{
		Key:       key,
		Data:      value,
		ExpiresAt: c.clock.Now().Add(c.ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, ".entry-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), c.keyToFilename(key)); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Clear removes all cache entries
func (c *FileCache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			_ = os.Remove(filepath.Join(c.dir, entry.Name()))
		}
	}
	return nil
}

// Cleanup removes expired entries and returns how many were removed
func (c *FileCache) Cleanup() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if _, ok := c.readEntry(filepath.Join(c.dir, entry.Name())); !ok {
			removed++
		}
	}
	return removed, nil
}
