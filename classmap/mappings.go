package classmap

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"structmapper/introspect"
)

// ErrDuplicateMapping is returned when a pair is declared twice.
var ErrDuplicateMapping = errors.New("duplicate class mapping")

type pairKey struct {
	src  introspect.Type
	dest introspect.Type
}

// ClassMappings holds at most one class map per (source, destination) pair.
// Pairs are ordered: A->B and B->A are distinct entries, each with its own
// correspondences. Type values used as keys must be comparable.
// It is safe for concurrent use.
type ClassMappings struct {
	mu     sync.RWMutex
	byPair map[pairKey]*ClassMap
	order  []*ClassMap
	ids    map[introspect.Type]int

	group singleflight.Group
}

// NewClassMappings creates an empty registry.
func NewClassMappings() *ClassMappings {
	return &ClassMappings{
		byPair: make(map[pairKey]*ClassMap),
		ids:    make(map[introspect.Type]int),
	}
}

// Add registers an explicitly declared class map under its own pair.
func (m *ClassMappings) Add(cm *ClassMap) error {
	key := pairKey{src: cm.Src().Type, dest: cm.Dest().Type}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byPair[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateMapping, cm)
	}

	m.put(key, cm)

	return nil
}

// Find returns the class map registered for the pair.
func (m *ClassMappings) Find(src, dest introspect.Type) (*ClassMap, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cm, ok := m.byPair[pairKey{src: src, dest: dest}]

	return cm, ok
}

// All returns the registered class maps in registration order.
func (m *ClassMappings) All() []*ClassMap {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*ClassMap, len(m.order))
	copy(out, m.order)

	return out
}

func (m *ClassMappings) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.order)
}

// GetOrCreate returns the class map for the pair, calling create at most
// once per pair even under concurrent callers. A failed create registers
// nothing.
func (m *ClassMappings) GetOrCreate(
	src, dest introspect.Type,
	create func() (*ClassMap, error),
) (*ClassMap, error) {
	if cm, ok := m.Find(src, dest); ok {
		return cm, nil
	}

	v, err, _ := m.group.Do(m.flightKey(src, dest), func() (any, error) {
		if cm, ok := m.Find(src, dest); ok {
			return cm, nil
		}

		cm, err := create()
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		defer m.mu.Unlock()

		key := pairKey{src: src, dest: dest}
		if existing, ok := m.byPair[key]; ok {
			return existing, nil
		}

		m.put(key, cm)

		return cm, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*ClassMap), nil
}

// put requires m.mu held for writing.
func (m *ClassMappings) put(key pairKey, cm *ClassMap) {
	m.byPair[key] = cm
	m.order = append(m.order, cm)
}

// flightKey interns both types so that distinct types with equal names
// never share a key.
func (m *ClassMappings) flightKey(src, dest introspect.Type) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return strconv.Itoa(m.intern(src)) + "->" + strconv.Itoa(m.intern(dest))
}

func (m *ClassMappings) intern(t introspect.Type) int {
	if id, ok := m.ids[t]; ok {
		return id
	}

	id := len(m.ids)
	m.ids[t] = id

	return id
}
