package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

const modesURL = "https://www.crtm.es/widgets/api/GetModes.php"

func newTestCache(t *testing.T, ttl time.Duration) (*FileCache, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
	c, err := NewFileCache(t.TempDir(), ttl, WithClock(clock))
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	return c, clock
}

func jsonFiles(t *testing.T, dir string) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	return files
}

func TestFileCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	value := []byte(`{"modes":{"Mode":[]}}`)
	if err := c.Set(modesURL, value); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := c.Get(modesURL)
	if !ok {
		t.Fatal("Get() returned false, want true")
	}
	if string(got) != string(value) {
		t.Errorf("Get() = %q, want %q", got, value)
	}
}

func TestFileCache_GetMissing(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	if _, ok := c.Get("non-existent-key"); ok {
		t.Error("Get() returned true for non-existent key")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	c, clock := newTestCache(t, 90*time.Second)

	if err := c.Set(modesURL, []byte(`{}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	clock.Advance(89 * time.Second)
	if _, ok := c.Get(modesURL); !ok {
		t.Fatal("entry expired early")
	}

	clock.Advance(time.Second)
	if _, ok := c.Get(modesURL); ok {
		t.Error("Get() returned expired entry")
	}
	if files := jsonFiles(t, c.Dir()); len(files) != 0 {
		t.Errorf("expired entry not removed: %v", files)
	}
}

func TestFileCache_HashKey(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	key := modesURL + "?a=1&b=2"
	filename := c.keyToFilename(key)
	if filepath.Dir(filename) != c.Dir() {
		t.Errorf("file %q outside cache dir %q", filename, c.Dir())
	}
	if filepath.Ext(filename) != ".json" {
		t.Errorf("filename %q has wrong extension", filename)
	}
	// sha256 hex + ".json"
	if len(filepath.Base(filename)) != 64+5 {
		t.Errorf("unexpected filename length: %q", filepath.Base(filename))
	}
	if c.keyToFilename(key) != filename {
		t.Error("keyToFilename is not deterministic")
	}
	if c.keyToFilename(modesURL) == filename {
		t.Error("different keys produced the same filename")
	}
}

func TestFileCache_CorruptEntry(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	filename := c.keyToFilename(modesURL)
	if err := os.WriteFile(filename, []byte("not json"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, ok := c.Get(modesURL); ok {
		t.Error("Get() returned corrupt entry")
	}
	if _, err := os.Stat(filename); !os.IsNotExist(err) {
		t.Error("corrupt entry not removed")
	}
}

func TestFileCache_NoTempFilesLeft(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	for i := 0; i < 3; i++ {
		if err := c.Set(modesURL, []byte(`{"n":1}`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	entries, err := os.ReadDir(c.Dir())
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected a single cache file, got %d", len(entries))
	}
}

func TestFileCache_CreateDirectory(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "crtm")

	if _, err := NewFileCache(nestedDir, time.Minute); err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	info, err := os.Stat(nestedDir)
	if err != nil {
		t.Fatalf("cache directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("cache path is not a directory")
	}
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	if got := DefaultCacheDir(); got != filepath.Join("/tmp/xdg", "crtm") {
		t.Errorf("DefaultCacheDir() = %q", got)
	}
}

func TestFileCache_Clear(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(key, []byte(`{}`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if files := jsonFiles(t, c.Dir()); len(files) != 0 {
		t.Errorf("Clear() left %d files", len(files))
	}
}

func TestFileCache_Cleanup(t *testing.T) {
	c, clock := newTestCache(t, time.Minute)

	if err := c.Set("old", []byte(`{}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	clock.Advance(45 * time.Second)
	if err := c.Set("fresh", []byte(`{}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	clock.Advance(30 * time.Second)

	removed, err := c.Cleanup()
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("Cleanup() removed %d, want 1", removed)
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("fresh entry removed")
	}
	if _, ok := c.Get("old"); ok {
		t.Error("expired entry kept")
	}
}
