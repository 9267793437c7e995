package storage

import "github.com/vovakirdan/colorguess/internal/game"

// DefaultNamespace is used for local play.
const DefaultNamespace = "local"

// Bucket is a Store view scoped to one namespace (one player).
// It adapts the store to the game's persistence and streak-recording ports.
type Bucket struct {
	store     *Store
	namespace string
}

// Bucket returns a view of the store scoped to namespace.
// An empty namespace means DefaultNamespace.
func (s *Store) Bucket(namespace string) *Bucket {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Bucket{store: s, namespace: namespace}
}

// Namespace returns the namespace this bucket reads and writes.
func (b *Bucket) Namespace() string {
	return b.namespace
}

// Get implements game.Persistence.
func (b *Bucket) Get(key string) (string, bool, error) {
	return b.store.Get(b.namespace, key)
}

// Set implements game.Persistence.
func (b *Bucket) Set(key, value string) error {
	return b.store.Set(b.namespace, key, value)
}

// Remove implements game.Persistence.
func (b *Bucket) Remove(key string) error {
	return b.store.Remove(b.namespace, key)
}

// RecordStreak implements game.StreakRecorder.
func (b *Bucket) RecordStreak(mode string, length int) error {
	_, err := b.store.SaveStreak(b.namespace, mode, length)
	return err
}

// TopStreaks returns the longest streaks recorded in this namespace.
func (b *Bucket) TopStreaks(limit int) ([]StreakEntry, error) {
	return b.store.TopStreaks(b.namespace, limit)
}

// Ensure Bucket implements the game ports
var (
	_ game.Persistence    = (*Bucket)(nil)
	_ game.StreakRecorder = (*Bucket)(nil)
)
