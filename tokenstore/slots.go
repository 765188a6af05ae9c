package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Slots is a string key-value medium with local-storage semantics.
type Slots interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// MemorySlots keeps values for the lifetime of the process.
type MemorySlots struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ Slots = (*MemorySlots)(nil)

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{items: make(map[string]string)}
}

func (m *MemorySlots) GetItem(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *MemorySlots) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MemorySlots) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// FileSlots stores one file per key in dir, so values survive restarts.
type FileSlots struct {
	mu  sync.Mutex
	dir string
}

var _ Slots = (*FileSlots)(nil)

// NewFileSlots creates dir with owner-only permissions if needed.
func NewFileSlots(dir string) (*FileSlots, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &FileSlots{dir: dir}, nil
}

func (f *FileSlots) path(key string) string {
	return filepath.Join(f.dir, filepath.Base(key))
}

func (f *FileSlots) GetItem(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// SetItem writes to a temp file and renames it over the slot.
func (f *FileSlots) SetItem(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, "."+filepath.Base(key)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", key, err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod %s: %w", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

func (f *FileSlots) RemoveItem(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
