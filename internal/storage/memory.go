package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/colorguess/internal/game"
)

// Memory is an in-memory implementation of the same ports as Bucket.
// State is lost when the process exits; used when the database cannot be
// opened and in tests.
type Memory struct {
	mu      sync.RWMutex // guards values and streaks
	values  map[string]string
	streaks []StreakEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements game.Persistence.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements game.Persistence.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Remove implements game.Persistence.
func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// RecordStreak implements game.StreakRecorder.
func (m *Memory) RecordStreak(mode string, length int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streaks = append(m.streaks, StreakEntry{
		Namespace: DefaultNamespace,
		Mode:      mode,
		Length:    length,
		CreatedAt: time.Now(),
	})
	return nil
}

// TopStreaks returns the longest recorded streaks, oldest first among ties.
func (m *Memory) TopStreaks(limit int) ([]StreakEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.RLock()
	entries := append([]StreakEntry(nil), m.streaks...)
	m.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Length > entries[j].Length
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

var (
	_ game.Persistence    = (*Memory)(nil)
	_ game.StreakRecorder = (*Memory)(nil)
)
