package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestVaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	v, err := NewVault(dir, "correct horse")
	if err != nil {
		t.Fatalf("NewVault error: %v", err)
	}
	defer v.Close()

	if _, err := v.Get("notes"); !errors.Is(err, ErrNoValue) {
		t.Fatalf("expected ErrNoValue, got %v", err)
	}
	if err := v.Set("notes", "secret markdown"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Reopen with the same passphrase; params persist beside the blob.
	v2, err := NewVault(dir, "correct horse")
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer v2.Close()
	got, err := v2.Get("notes")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != "secret markdown" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestVaultWrongPassphraseFailsGet(t *testing.T) {
	dir := t.TempDir()
	v, err := NewVault(dir, "right")
	if err != nil {
		t.Fatalf("NewVault error: %v", err)
	}
	defer v.Close()
	if err := v.Set("notes", "data"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	wrong, err := NewVault(dir, "wrong")
	if err != nil {
		t.Fatalf("NewVault error: %v", err)
	}
	defer wrong.Close()
	_, err = wrong.Get("notes")
	if err == nil {
		t.Fatalf("expected unseal failure with wrong passphrase")
	}
	if errors.Is(err, ErrNoValue) {
		t.Fatalf("wrong passphrase must not read as a missing value")
	}
}

func TestVaultSurvivesCorruptParamsFile(t *testing.T) {
	dir := t.TempDir()
	v, err := NewVault(dir, "pw")
	if err != nil {
		t.Fatalf("NewVault error: %v", err)
	}
	if err := v.Set("notes", "irreplaceable"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v.Close()

	path := filepath.Join(dir, ".vault_params")
	orig, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read params file: %v", err)
	}
	if err := os.WriteFile(path, []byte("junk"), 0600); err != nil {
		t.Fatalf("corrupt params file: %v", err)
	}

	// A corrupt params file must surface as an open error, not silently
	// regenerate the salt and orphan every sealed value.
	if _, err := NewVault(dir, "pw"); err == nil {
		t.Fatalf("expected open failure with corrupt params file")
	}

	if err := os.WriteFile(path, orig, 0600); err != nil {
		t.Fatalf("restore params file: %v", err)
	}
	v2, err := NewVault(dir, "pw")
	if err != nil {
		t.Fatalf("reopen after restore error: %v", err)
	}
	defer v2.Close()
	got, err := v2.Get("notes")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != "irreplaceable" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestVaultValueIsNotPlaintextOnDisk(t *testing.T) {
	dir := t.TempDir()
	v, err := NewVault(dir, "pw")
	if err != nil {
		t.Fatalf("NewVault error: %v", err)
	}
	defer v.Close()
	if err := v.Set("notes", "visible secret"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	raw, err := v.inner.Get("notes")
	if err != nil {
		t.Fatalf("raw read error: %v", err)
	}
	if raw == "visible secret" {
		t.Fatalf("value stored in plaintext")
	}
}
