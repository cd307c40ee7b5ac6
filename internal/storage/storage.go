// Package storage defines the key-value persistence abstraction the note
// store writes through to, with backends for Fyne preferences, plain files,
// an encrypted vault file, and an in-memory map.
package storage

import "errors"

// ErrNoValue is returned by Get when no value exists under the key.
var ErrNoValue = errors.New("storage: no value")

// KV is an opaque key-value store holding string values. Implementations are
// used from the UI event callbacks only, so they do not need to be safe for
// concurrent use.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
