package registry

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"

	"github.com/registrylabs/ipfs-registrar/interfaces"
)

// MockCIDRegistry mocks the CIDRegistry interface
type MockCIDRegistry struct {
	mock.Mock
}

// Store mocks the Store method
func (m *MockCIDRegistry) Store(ctx context.Context, cid interfaces.CID) (*types.Receipt, error) {
	args := m.Called(ctx, cid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Receipt), args.Error(1)
}

// StoredCIDs mocks the StoredCIDs method
func (m *MockCIDRegistry) StoredCIDs(ctx context.Context, owner common.Address, fromBlock uint64) ([]interfaces.CID, error) {
	args := m.Called(ctx, owner, fromBlock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]interfaces.CID), args.Error(1)
}
