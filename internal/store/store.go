package store

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"notebook/internal/apperr"
	"notebook/internal/storage"
)

const (
	welcomeName    = "Welcome"
	welcomeContent = "# Welcome to Notebook\n\nThis is your first note. You can:\n\n" +
		"- Create new notes\n- Edit markdown content\n- See live preview\n" +
		"- All data is saved locally\n\n## Getting Started\n\n" +
		"Click the **New Note** button to create a new note."

	// DefaultContent seeds every freshly created note.
	DefaultContent = "# New Note\n\nStart writing here..."
)

// Store is the ordered collection of notes plus its write-through
// persistence. Every mutation serializes the whole collection to the backing
// KV before returning, so in-memory and persisted state never diverge
// observably. On a write failure the in-memory state stays applied and
// remains authoritative for the session; the error is returned for the UI to
// surface as a non-fatal notice.
//
// A Store is owned by a single UI session and is not safe for concurrent use.
type Store struct {
	kv       storage.KV
	key      string
	notes    []*Note
	index    map[string]*Note
	selected string
	log      *slog.Logger
}

// New creates an empty store backed by kv under the default storage key.
// Call Load before use.
func New(kv storage.KV) *Store {
	return &Store{
		kv:    kv,
		key:   StorageKey,
		index: make(map[string]*Note),
		log:   slog.Default(),
	}
}

// Len returns the number of notes.
func (s *Store) Len() int { return len(s.notes) }

// List returns note names in insertion order. Never mutates state.
func (s *Store) List() []string {
	names := make([]string, 0, len(s.notes))
	for _, n := range s.notes {
		names = append(names, n.Name)
	}
	return names
}

// Get returns a copy of the named note, or apperr.ErrNotFound.
func (s *Store) Get(name string) (Note, error) {
	n, ok := s.index[name]
	if !ok {
		return Note{}, fmt.Errorf("note %q: %w", name, apperr.ErrNotFound)
	}
	return *n, nil
}

// Create inserts a new note seeded with DefaultContent under a name derived
// from base: base itself when unused, otherwise base-1, base-2, … until one
// is free. The new note becomes the selection. Persists before returning.
func (s *Store) Create(base string) (Note, error) {
	base, err := SanitizeName(base)
	if err != nil {
		return Note{}, err
	}
	name := s.uniqueName(base)
	n := NewNote(name, DefaultContent)
	s.notes = append(s.notes, &n)
	s.index[name] = &n
	s.selected = name
	return n, s.persist()
}

// uniqueName applies the collision policy: try base, then base-1, base-2, …
func (s *Store) uniqueName(base string) string {
	if _, taken := s.index[base]; !taken {
		return base
	}
	for i := 1; ; i++ {
		cand := fmt.Sprintf("%s-%d", base, i)
		if _, taken := s.index[cand]; !taken {
			return cand
		}
	}
}

// UpdateContent replaces the named note's content wholesale and refreshes
// its modified timestamp. An unknown name is a logged no-op returning
// apperr.ErrNotFound, never a crash. Persists before returning.
func (s *Store) UpdateContent(name, content string) error {
	n, ok := s.index[name]
	if !ok {
		s.log.Warn("update of unknown note", "name", name)
		return fmt.Errorf("note %q: %w", name, apperr.ErrNotFound)
	}
	n.Content = content
	n.ModifiedAt = time.Now()
	return s.persist()
}

// Rename gives a note a new name, auto-suffixing on collision instead of
// rejecting. Returns the name actually assigned. Persists before returning.
func (s *Store) Rename(oldName, requested string) (string, error) {
	n, ok := s.index[oldName]
	if !ok {
		s.log.Warn("rename of unknown note", "name", oldName)
		return "", fmt.Errorf("note %q: %w", oldName, apperr.ErrNotFound)
	}
	requested, err := SanitizeName(requested)
	if err != nil {
		return "", err
	}
	if requested == oldName {
		return oldName, nil
	}
	newName := s.uniqueName(requested)
	delete(s.index, oldName)
	n.Name = newName
	n.ModifiedAt = time.Now()
	s.index[newName] = n
	if s.selected == oldName {
		s.selected = newName
	}
	return newName, s.persist()
}

// Delete removes the named note. When it was selected, the selection moves
// to the first remaining note in insertion order, or to none. Persists
// before returning.
func (s *Store) Delete(name string) error {
	if _, ok := s.index[name]; !ok {
		s.log.Warn("delete of unknown note", "name", name)
		return fmt.Errorf("note %q: %w", name, apperr.ErrNotFound)
	}
	delete(s.index, name)
	for i, n := range s.notes {
		if n.Name == name {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			break
		}
	}
	if s.selected == name {
		if len(s.notes) > 0 {
			s.selected = s.notes[0].Name
		} else {
			s.selected = ""
		}
	}
	return s.persist()
}

// Select marks the named note as the one shown in editor and preview.
func (s *Store) Select(name string) error {
	if _, ok := s.index[name]; !ok {
		return fmt.Errorf("note %q: %w", name, apperr.ErrNotFound)
	}
	s.selected = name
	return nil
}

// Selected returns the selected note's name, or "" when nothing is selected.
func (s *Store) Selected() string { return s.selected }

// Save serializes the full collection to the backing storage.
func (s *Store) Save() error { return s.persist() }

// Load replaces the in-memory collection with the persisted one. A missing
// or corrupt blob falls back to a single seeded welcome note instead of
// failing the session. Read errors that are neither (for example a vault
// that refuses to unseal) are returned untouched so the caller can retry
// rather than silently overwrite the data.
func (s *Store) Load() error {
	blob, err := s.kv.Get(s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNoValue) {
			s.seedWelcome()
			return s.persist()
		}
		return fmt.Errorf("loading notebook: %w", err)
	}
	notes, err := decodeBlob(blob)
	if err != nil {
		s.log.Warn("notebook blob unreadable, starting fresh", "error", err)
		s.seedWelcome()
		return s.persist()
	}
	s.notes = notes
	s.index = make(map[string]*Note, len(notes))
	for _, n := range notes {
		s.index[n.Name] = n
	}
	if len(s.notes) > 0 {
		s.selected = s.notes[0].Name
	} else {
		s.selected = ""
	}
	return nil
}

func (s *Store) seedWelcome() {
	n := NewNote(welcomeName, welcomeContent)
	s.notes = []*Note{&n}
	s.index = map[string]*Note{welcomeName: &n}
	s.selected = welcomeName
}

func (s *Store) persist() error {
	blob, err := encodeBlob(s.notes)
	if err != nil {
		return err
	}
	if err := s.kv.Set(s.key, blob); err != nil {
		return fmt.Errorf("persisting notebook: %w", err)
	}
	return nil
}
