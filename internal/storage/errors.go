package storage

import "errors"

// ErrSnapshotCorrupt is returned when a stored payload exists but cannot be
// parsed as a snapshot. Callers must surface this instead of falling back to
// defaults.
var ErrSnapshotCorrupt = errors.New("the stored snapshot is corrupt and cannot be parsed")
