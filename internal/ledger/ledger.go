// Package ledger provides typed accessors for the entity collections in the
// snapshot. All writes funnel through the storage mutation gateway; every
// method applies exactly one transform so that logically coupled effects land
// in a single critical section.
package ledger

import (
	"github.com/samiti-app/backend/internal/models"
	"github.com/samiti-app/backend/internal/storage"
)

// Ledger is the set of entity repositories over one snapshot store.
type Ledger struct {
	store *storage.Store
}

// New returns a Ledger operating on the given store.
func New(store *storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Snapshot returns the current snapshot for reading.
func (l *Ledger) Snapshot() (models.Snapshot, error) {
	return l.store.Load()
}

// Reset overwrites all data with the default snapshot.
func (l *Ledger) Reset() (models.Snapshot, error) {
	return l.store.Apply(func(models.Snapshot) (models.Snapshot, error) {
		return models.DefaultSnapshot(), nil
	})
}
