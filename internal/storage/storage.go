// Package storage owns the persisted snapshot slot.
//
// The whole application state is one JSON document stored in a single row of
// the snapshots table. Load and Save move the full document; Apply is the
// only mutation path and serializes load-transform-save into one critical
// section.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/samiti-app/backend/internal/models"
)

// slotKey is the fixed namespace key of the snapshot document.
const slotKey = "samiti_db_v1"

// slot is the database row holding the serialized snapshot. Version counts
// successful saves and enables optimistic writes should a second writer ever
// be introduced.
type slot struct {
	Key       string `gorm:"primaryKey"`
	Version   uint
	Payload   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (slot) TableName() string {
	return "snapshots"
}

// Store provides access to the persisted snapshot.
type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// Connect opens the SQLite database holding the snapshot slot and migrates
// its schema.
func Connect(dsn string) (*Store, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(slot{}); err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	store := &Store{db: db}

	if err := store.seed(); err != nil {
		return nil, fmt.Errorf("error seeding the snapshot slot: %w", err)
	}

	return store, nil
}

// seed persists the default snapshot if the slot is still empty.
//
// Seeding exactly once keeps the IDs of the default committee seats and
// rules stable across restarts. Without it, every Load of an empty slot
// would mint fresh IDs and clients could never address the defaults.
func (s *Store) seed() error {
	var count int64

	if err := s.db.Model(&slot{}).Where("key = ?", slotKey).Count(&count).Error; err != nil {
		return normalize(err)
	}

	if count > 0 {
		return nil
	}

	return s.Save(models.DefaultSnapshot())
}

// Ping verifies that the database connection is alive.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Ping()
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}

// Load returns the persisted snapshot.
//
// Connect seeds an empty slot with the defaults, so a missing row only
// happens when it was deleted out of band; in that case the default snapshot
// is returned. A stored payload that cannot be parsed is an error wrapping
// ErrSnapshotCorrupt; it is never silently replaced by defaults as that
// would discard user data.
func (s *Store) Load() (models.Snapshot, error) {
	var row slot

	err := s.db.First(&row, "key = ?", slotKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSnapshot(), nil
	}
	if err != nil {
		return models.Snapshot{}, normalize(err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(row.Payload, &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}

	return snapshot, nil
}

// Save persists the given snapshot, fully overwriting any prior value, and
// increments the slot version.
func (s *Store) Save(snapshot models.Snapshot) error {
	snapshot.SchemaVersion = models.SchemaVersion

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var row slot

		err := tx.First(&row, "key = ?", slotKey).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row.Key = slotKey
		row.Version++
		row.Payload = payload

		return tx.Save(&row).Error
	})
	if err != nil {
		return normalize(err)
	}

	SnapshotWrites.Inc()

	return nil
}

// Apply loads the current snapshot, applies the transform to a clone and
// persists the result. It is the only path by which the snapshot is mutated.
//
// The whole load-transform-save sequence runs under the store mutex, so no
// other mutation can be interleaved. If the transform returns an error,
// nothing is written.
func (s *Store) Apply(transform func(models.Snapshot) (models.Snapshot, error)) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Load()
	if err != nil {
		return models.Snapshot{}, err
	}

	next, err := transform(current.Clone())
	if err != nil {
		return models.Snapshot{}, err
	}

	if err := s.Save(next); err != nil {
		return models.Snapshot{}, err
	}

	return next, nil
}

// Version returns the current slot version. A slot that has never been saved
// has version 0.
func (s *Store) Version() (uint, error) {
	var row slot

	err := s.db.First(&row, "key = ?", slotKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, normalize(err)
	}

	return row.Version, nil
}

// normalize replaces raw driver errors with a general error message.
//
// For these errors we cannot provide the caller with a helpful message.
// The original error is logged so that server admins can debug.
func normalize(err error) error {
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return models.ErrGeneral
	}

	return err
}
