package storage

// Memory is a map-backed KV for tests and ephemeral sessions.
type Memory struct {
	m map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, error) {
	v, ok := s.m[key]
	if !ok {
		return "", ErrNoValue
	}
	return v, nil
}

func (s *Memory) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *Memory) Remove(key string) error {
	delete(s.m, key)
	return nil
}
