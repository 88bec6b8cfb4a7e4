// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// SnapshotStore is a read-only source of repository snapshot files.
// This allows the catalog loader to be tested without a real directory or server.
type SnapshotStore interface {
	// List returns the snapshot filenames available in the store.
	List(ctx context.Context) ([]string, error)

	// Read returns the raw contents of one snapshot file.
	Read(ctx context.Context, name string) ([]byte, error)

	// Location describes where the store lives (a directory or base URL).
	Location() string
}
