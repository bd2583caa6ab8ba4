package persist

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
)

// Store is the key-value collaborator the board mirrors itself into. Get
// reports false when the key has never been set.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Memory is an in-process Store.
type Memory struct {
	data map[string]string
	mu   sync.RWMutex
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Preferences stores values in the fyne application preferences, which
// fyne persists to disk on its own.
type Preferences struct {
	prefs fyne.Preferences
}

func NewPreferences(p fyne.Preferences) *Preferences {
	return &Preferences{prefs: p}
}

// Get treats an empty string as a missing key; the board never stores empty
// values.
func (p *Preferences) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	v := p.prefs.String(key)
	return v, v != "", nil
}

func (p *Preferences) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.prefs.SetString(key, value)
	return nil
}
