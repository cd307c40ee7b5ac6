package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File stores each key as a file under a data directory. Writes go through a
// temp file and rename so a crash mid-write never leaves a torn value.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("storage: creating data dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (s *File) path(key string) string {
	// Keys are fixed identifiers, not user input, but strip separators anyway
	// so a bad key cannot escape the data dir.
	key = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r < 0x20 {
			return -1
		}
		return r
	}, key)
	return filepath.Join(s.dir, key+".json")
}

func (s *File) Get(key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoValue
		}
		return "", fmt.Errorf("storage: reading %s: %w", key, err)
	}
	return string(data), nil
}

func (s *File) Set(key, value string) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0600); err != nil {
		return fmt.Errorf("storage: writing %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("storage: committing %s: %w", key, err)
	}
	return nil
}

func (s *File) Remove(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: removing %s: %w", key, err)
	}
	return nil
}
