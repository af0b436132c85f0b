package storage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/registrylabs/ipfs-registrar/interfaces"
)

// MockStorageClient mocks the interfaces.StorageClient interface
type MockStorageClient struct {
	mock.Mock
}

// Add mocks the Add method
func (m *MockStorageClient) Add(ctx context.Context, data []byte) (interfaces.CID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(interfaces.CID), args.Error(1)
}

// Available mocks the Available method
func (m *MockStorageClient) Available(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// Name mocks the Name method
func (m *MockStorageClient) Name() string {
	args := m.Called()
	return args.String(0)
}
