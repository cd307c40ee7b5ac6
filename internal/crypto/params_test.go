package crypto

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureParamsCreatesAndReloads(t *testing.T) {
	dir := t.TempDir()
	p1, err := EnsureParams(dir)
	if err != nil {
		t.Fatalf("EnsureParams error: %v", err)
	}
	if len(p1.Salt) != 16 {
		t.Fatalf("expected 16-byte salt, got %d", len(p1.Salt))
	}
	if p1.Time == 0 || p1.MemoryKB == 0 || p1.Threads == 0 {
		t.Fatalf("expected defaults filled in: %+v", p1)
	}

	p2, err := EnsureParams(dir)
	if err != nil {
		t.Fatalf("EnsureParams reload error: %v", err)
	}
	if !bytes.Equal(p1.Salt, p2.Salt) {
		t.Fatalf("expected stable salt across loads")
	}
}

func TestEnsureParamsRefusesToReplaceCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".vault_params")
	if err := os.WriteFile(path, []byte("junk"), 0600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	if _, err := EnsureParams(dir); err == nil {
		t.Fatalf("expected error on corrupt params file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read params file: %v", err)
	}
	if string(data) != "junk" {
		t.Fatalf("corrupt params file must not be overwritten, got %q", data)
	}
}

func TestEnsureParamsKeepsSaltAcrossCorruptRead(t *testing.T) {
	dir := t.TempDir()
	p1, err := EnsureParams(dir)
	if err != nil {
		t.Fatalf("EnsureParams error: %v", err)
	}
	path := filepath.Join(dir, ".vault_params")
	orig, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read params file: %v", err)
	}

	if err := os.WriteFile(path, []byte("torn write"), 0600); err != nil {
		t.Fatalf("corrupt params file: %v", err)
	}
	if _, err := EnsureParams(dir); err == nil {
		t.Fatalf("expected error on corrupt params file")
	}

	// Restoring the file must yield the original salt, proving nothing
	// regenerated it in between.
	if err := os.WriteFile(path, orig, 0600); err != nil {
		t.Fatalf("restore params file: %v", err)
	}
	p2, err := EnsureParams(dir)
	if err != nil {
		t.Fatalf("EnsureParams after restore error: %v", err)
	}
	if !bytes.Equal(p1.Salt, p2.Salt) {
		t.Fatalf("salt changed across corrupt read")
	}
}

func TestParamsSaltsDiffer(t *testing.T) {
	p1, err := EnsureParams(t.TempDir())
	if err != nil {
		t.Fatalf("EnsureParams error: %v", err)
	}
	p2, err := EnsureParams(t.TempDir())
	if err != nil {
		t.Fatalf("EnsureParams error: %v", err)
	}
	if bytes.Equal(p1.Salt, p2.Salt) {
		t.Fatalf("expected unique salts per vault")
	}
}
