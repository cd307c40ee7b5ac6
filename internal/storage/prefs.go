package storage

import "fyne.io/fyne/v2"

// Prefs adapts fyne.Preferences to the KV interface. Preferences cannot
// distinguish an absent key from an empty string, so an empty value reads as
// ErrNoValue; callers only ever store non-empty JSON documents.
type Prefs struct {
	p fyne.Preferences
}

func NewPrefs(p fyne.Preferences) *Prefs {
	return &Prefs{p: p}
}

func (s *Prefs) Get(key string) (string, error) {
	v := s.p.String(key)
	if v == "" {
		return "", ErrNoValue
	}
	return v, nil
}

func (s *Prefs) Set(key, value string) error {
	s.p.SetString(key, value)
	return nil
}

func (s *Prefs) Remove(key string) error {
	s.p.RemoveValue(key)
	return nil
}
