// Package config handles the notebook's on-disk configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Storage backend identifiers for AppConfig.Storage.
const (
	StoragePrefs = "preferences"
	StorageFile  = "file"
	StorageVault = "vault"
)

type AppConfig struct {
	// DataDir holds the blob for the file and vault backends.
	DataDir string `json:"data_dir"`
	// Storage selects the persistence backend.
	Storage string `json:"storage"`
}

func (c AppConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.Storage, validation.Required,
			validation.In(StoragePrefs, StorageFile, StorageVault)),
	)
}

func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func configPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".notebook", "config.json")
}

// LoadOrInit reads the config file, falling back to defaults for anything
// missing or invalid, and writes the result back so the file always exists.
func LoadOrInit() AppConfig {
	cfg := AppConfig{DataDir: "~/.notebook/data", Storage: StoragePrefs}

	data, err := os.ReadFile(configPath())
	if err == nil {
		var loaded AppConfig
		if json.Unmarshal(data, &loaded) == nil {
			if loaded.DataDir != "" {
				cfg.DataDir = loaded.DataDir
			}
			if loaded.Storage != "" {
				cfg.Storage = loaded.Storage
			}
		}
	}
	if cfg.Validate() != nil {
		cfg.Storage = StoragePrefs
	}

	_ = Save(cfg)
	return cfg
}

func Save(cfg AppConfig) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
