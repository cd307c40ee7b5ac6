package storage

import (
	"fmt"
	"os"

	"notebook/internal/crypto"
)

// Vault stores values like File but sealed with AES-256-GCM under a key
// derived from a passphrase. A wrong passphrase or tampered file surfaces as
// a Get error, never as a silently empty value.
type Vault struct {
	inner *File
	key   []byte
}

func NewVault(dir, passphrase string) (*Vault, error) {
	inner, err := NewFile(dir)
	if err != nil {
		return nil, err
	}
	params, err := crypto.EnsureParams(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: vault params: %w", err)
	}
	return &Vault{inner: inner, key: crypto.DeriveKey(passphrase, params)}, nil
}

func (s *Vault) Get(key string) (string, error) {
	sealed, err := os.ReadFile(s.inner.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoValue
		}
		return "", fmt.Errorf("storage: reading %s: %w", key, err)
	}
	plain, err := crypto.Open(s.key, sealed)
	if err != nil {
		return "", fmt.Errorf("storage: unsealing %s: %w", key, err)
	}
	return string(plain), nil
}

func (s *Vault) Set(key, value string) error {
	sealed, err := crypto.Seal(s.key, []byte(value))
	if err != nil {
		return fmt.Errorf("storage: sealing %s: %w", key, err)
	}
	return s.inner.Set(key, string(sealed))
}

func (s *Vault) Remove(key string) error {
	return s.inner.Remove(key)
}

// Close wipes the derived key. The vault is unusable afterwards.
func (s *Vault) Close() {
	crypto.WipeBytes(s.key)
}
