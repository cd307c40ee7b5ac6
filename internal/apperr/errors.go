// Package apperr defines the sentinel errors shared across the notebook.
package apperr

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidName = errors.New("invalid name")
	ErrCorruptBlob = errors.New("corrupt blob")
)
