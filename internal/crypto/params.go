package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// paramsDoc is the on-disk form of KDFParams. Versioned so new fields can be
// added without breaking existing vaults.
type paramsDoc struct {
	Version  int    `json:"version"`
	Salt     []byte `json:"salt"`
	Time     uint32 `json:"time"`
	MemoryKB uint32 `json:"memory_kb"`
	Threads  uint8  `json:"threads"`
	KeyLen   uint32 `json:"key_len"`
	KDF      string `json:"kdf"`
}

func paramsPath(dir string) string {
	return filepath.Join(dir, ".vault_params")
}

// EnsureParams loads the KDF parameters stored beside the vault blob,
// creating them with a fresh random salt on first use. Fresh params are
// written only when no params file exists: a present-but-unreadable file is
// returned as an error, never replaced, because regenerating the salt would
// lock every existing sealed value out permanently.
func EnsureParams(dir string) (KDFParams, error) {
	p, err := loadParams(dir)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return KDFParams{}, fmt.Errorf("loading vault params: %w", err)
	}
	if err := writeParamsAtomic(dir, KDFParams{}); err != nil {
		return KDFParams{}, err
	}
	return loadParams(dir)
}

func loadParams(dir string) (KDFParams, error) {
	b, err := os.ReadFile(paramsPath(dir))
	if err != nil {
		return KDFParams{}, err
	}
	var doc paramsDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return KDFParams{}, fmt.Errorf("parsing vault params: %w", err)
	}
	if doc.Version <= 0 {
		return KDFParams{}, errors.New("invalid vault params version")
	}
	if len(doc.Salt) != 16 {
		return KDFParams{}, errors.New("invalid vault salt")
	}
	p := KDFParams{Salt: doc.Salt, Time: doc.Time, MemoryKB: doc.MemoryKB, Threads: doc.Threads}
	ensureDefaults(&p)
	return p, nil
}

func writeParamsAtomic(dir string, p KDFParams) error {
	ensureDefaults(&p)
	if len(p.Salt) != 16 {
		s := make([]byte, 16)
		if _, err := rand.Read(s); err != nil {
			return fmt.Errorf("generating vault salt: %w", err)
		}
		p.Salt = s
	}
	doc := paramsDoc{
		Version:  1,
		Salt:     p.Salt,
		Time:     p.Time,
		MemoryKB: p.MemoryKB,
		Threads:  p.Threads,
		KeyLen:   32,
		KDF:      "argon2id",
	}
	b, _ := json.MarshalIndent(doc, "", "  ")

	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	tmp := paramsPath(dir) + ".tmp"
	if err := os.WriteFile(tmp, b, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, paramsPath(dir)); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func ensureDefaults(p *KDFParams) {
	if p.Time == 0 {
		p.Time = 3
	}
	if p.MemoryKB == 0 {
		p.MemoryKB = 64 * 1024
	}
	if p.Threads == 0 {
		p.Threads = 2
	}
}
