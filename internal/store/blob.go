package store

import (
	"encoding/json"
	"fmt"
	"time"

	"notebook/internal/apperr"
)

// StorageKey is the fixed key the whole collection serializes under.
const StorageKey = "notebook_files"

// blobNote is the wire form of a Note inside the persistence blob: an
// ordered JSON array of these, order matching the store's insertion order.
type blobNote struct {
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
	ModifiedAt time.Time `json:"modified_at,omitzero"`
}

func encodeBlob(notes []*Note) (string, error) {
	out := make([]blobNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, blobNote{
			Name:       n.Name,
			Content:    n.Content,
			CreatedAt:  n.CreatedAt,
			ModifiedAt: n.ModifiedAt,
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encoding notebook blob: %w", err)
	}
	return string(data), nil
}

func decodeBlob(blob string) ([]*Note, error) {
	var in []blobNote
	if err := json.Unmarshal([]byte(blob), &in); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrCorruptBlob, err)
	}
	seen := make(map[string]bool, len(in))
	notes := make([]*Note, 0, len(in))
	for _, bn := range in {
		if bn.Name == "" {
			return nil, fmt.Errorf("%w: unnamed note", apperr.ErrCorruptBlob)
		}
		if seen[bn.Name] {
			return nil, fmt.Errorf("%w: duplicate note %q", apperr.ErrCorruptBlob, bn.Name)
		}
		seen[bn.Name] = true
		notes = append(notes, &Note{
			Name:       bn.Name,
			Content:    bn.Content,
			CreatedAt:  bn.CreatedAt,
			ModifiedAt: bn.ModifiedAt,
		})
	}
	return notes, nil
}
