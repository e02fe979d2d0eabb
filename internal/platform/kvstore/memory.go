package kvstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. Failures can be injected per key to
// exercise error paths.
type MemoryStore struct {
	mu      sync.Mutex
	values  map[string]string
	getErrs map[string]error
	setErrs map[string]error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:  map[string]string{},
		getErrs: map[string]error{},
		setErrs: map[string]error{},
	}
}

// FailGet makes every Get of key return err until cleared with a nil err.
func (m *MemoryStore) FailGet(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.getErrs, key)
		return
	}
	m.getErrs[key] = err
}

// FailSet makes every Set and Delete of key return err until cleared.
func (m *MemoryStore) FailSet(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.setErrs, key)
		return
	}
	m.setErrs[key] = err
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.getErrs[key]; err != nil {
		return "", false, err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.setErrs[key]; err != nil {
		return err
	}
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.setErrs[key]; err != nil {
		return err
	}
	delete(m.values, key)
	return nil
}

// Snapshot copies the current contents.
func (m *MemoryStore) Snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
