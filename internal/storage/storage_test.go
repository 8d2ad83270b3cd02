package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lodestar-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbDir := filepath.Join(tmpDir, "cache")
	cache, err := NewCacheAt(dbDir)
	if err != nil {
		t.Fatalf("NewCacheAt failed: %v", err)
	}
	defer cache.Close()

	const hash uint64 = 0x0123456789abcdef
	if _, ok, err := cache.GetTTEntry(hash); err != nil {
		t.Fatalf("GetTTEntry on empty cache: %v", err)
	} else if ok {
		t.Fatalf("expected miss on empty cache")
	}

	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := cache.SetTTEntry(hash, want); err != nil {
		t.Fatalf("SetTTEntry: %v", err)
	}

	got, ok, err := cache.GetTTEntry(hash)
	if err != nil {
		t.Fatalf("GetTTEntry: %v", err)
	}
	if !ok {
		t.Fatalf("expected hit after SetTTEntry")
	}
	if string(got) != string(want) {
		t.Fatalf("GetTTEntry = %v, want %v", got, want)
	}
}

func TestCacheCorrectionBucket(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lodestar-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cache, err := NewCacheAt(filepath.Join(tmpDir, "cache"))
	if err != nil {
		t.Fatalf("NewCacheAt failed: %v", err)
	}
	defer cache.Close()

	if err := cache.SetCorrection(42, []byte{9, 9}); err != nil {
		t.Fatalf("SetCorrection: %v", err)
	}
	got, ok, err := cache.GetCorrection(42)
	if err != nil || !ok {
		t.Fatalf("GetCorrection: got=%v ok=%v err=%v", got, ok, err)
	}
	if len(got) != 2 || got[0] != 9 || got[1] != 9 {
		t.Fatalf("GetCorrection = %v", got)
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}
	t.Logf("Data directory: %s", dataDir)
}
