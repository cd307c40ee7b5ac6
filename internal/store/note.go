// Package store implements the in-memory note collection and its
// write-through persistence.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"notebook/internal/apperr"
)

// Note is one named unit of Markdown content. The name is the lookup key and
// is unique within a store. Timestamps are advisory metadata only; nothing
// depends on them.
type Note struct {
	Name       string
	Content    string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NewNote creates a note stamped with the current time.
func NewNote(name, content string) Note {
	now := time.Now()
	return Note{Name: name, Content: content, CreatedAt: now, ModifiedAt: now}
}

// SanitizeName strips path-hostile and control characters from a requested
// note name and validates what remains. Names never touch the file system
// directly, but they flow into export paths and storage keys downstream.
func SanitizeName(name string) (string, error) {
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == 0:
			return -1
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, name)
	name = strings.Trim(strings.TrimSpace(name), ".")

	err := validation.Validate(name,
		validation.Required,
		validation.Length(1, 255),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrInvalidName, err)
	}
	return name, nil
}

// IsInvalidName reports whether err stems from name sanitization.
func IsInvalidName(err error) bool {
	return errors.Is(err, apperr.ErrInvalidName)
}
