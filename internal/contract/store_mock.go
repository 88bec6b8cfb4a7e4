package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ SnapshotStore = &MockSnapshotStore{} // Compile-time check

// List implements the SnapshotStore interface.
func (m *MockSnapshotStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

// Read implements the SnapshotStore interface.
func (m *MockSnapshotStore) Read(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// Location implements the SnapshotStore interface.
func (m *MockSnapshotStore) Location() string {
	args := m.Called()
	return args.String(0)
}
