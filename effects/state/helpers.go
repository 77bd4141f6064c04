package state

import (
	"reflect"
	"sync"
)

// Equals compares two state values.
// Equatable values decide for themselves; everything else is compared deeply.
func Equals(a, b any) bool {
	if eq, ok := a.(Equatable); ok {
		return eq.Equals(b)
	}
	return reflect.DeepEqual(a, b)
}

type mapRepo struct {
	mu     sync.Mutex
	values map[string]any
}

// NewMapRepo creates an in-memory Repo.
func NewMapRepo() Repo {
	return &mapRepo{values: make(map[string]any)}
}

func (m *mapRepo) Load(key string) (v any, ok bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok = m.values[key]
	return
}

func (m *mapRepo) Store(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *mapRepo) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *mapRepo) CompareAndSwap(key string, old, new any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	actual, ok := m.values[key]
	if !matches(old, actual, ok) {
		return false, nil
	}
	m.values[key] = new
	return true, nil
}

// matches reports whether the current value satisfies the expected old value.
func matches(old, actual any, found bool) bool {
	if !found {
		return old == nil
	}
	return Equals(old, actual)
}
