package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetGetRemove(t *testing.T) {
	kv, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile error: %v", err)
	}

	if _, err := kv.Get("missing"); !errors.Is(err, ErrNoValue) {
		t.Fatalf("expected ErrNoValue, got %v", err)
	}

	if err := kv.Set("notes", `[{"name":"a"}]`); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, err := kv.Get("notes")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if v != `[{"name":"a"}]` {
		t.Fatalf("unexpected value %q", v)
	}

	if err := kv.Remove("notes"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := kv.Get("notes"); !errors.Is(err, ErrNoValue) {
		t.Fatalf("expected ErrNoValue after remove, got %v", err)
	}
	if err := kv.Remove("notes"); err != nil {
		t.Fatalf("removing an absent key must not fail: %v", err)
	}
}

func TestFileSetOverwrites(t *testing.T) {
	kv, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile error: %v", err)
	}
	if err := kv.Set("k", "one"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := kv.Set("k", "two"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, _ := kv.Get("k")
	if v != "two" {
		t.Fatalf("expected overwrite, got %q", v)
	}
}

func TestFileSetLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile error: %v", err)
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestFilePathStripsSeparators(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile error: %v", err)
	}
	if err := kv.Set("../escape", "v"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "..escape.json")); err != nil {
		t.Fatalf("expected key confined to data dir: %v", err)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemory()
	if _, err := kv.Get("k"); !errors.Is(err, ErrNoValue) {
		t.Fatalf("expected ErrNoValue, got %v", err)
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, err := kv.Get("k")
	if err != nil || v != "v" {
		t.Fatalf("Get = %q, %v", v, err)
	}
	if err := kv.Remove("k"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := kv.Get("k"); !errors.Is(err, ErrNoValue) {
		t.Fatalf("expected ErrNoValue after remove, got %v", err)
	}
}
