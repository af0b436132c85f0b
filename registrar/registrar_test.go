package registrar

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/registrylabs/ipfs-registrar/interfaces"
	"github.com/registrylabs/ipfs-registrar/registry"
	"github.com/registrylabs/ipfs-registrar/storage"
)

const testCID = interfaces.CID("bafybeibml5uieyxa5tufngvg7fgwbkwvlsuntwbxgtskoqynbt7wlchmfmu")

var testOwner = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func successReceipt() *types.Receipt {
	return &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      common.HexToHash("0x8a7c6cbf51bcd0b0e63c69527e8472c3b1201a1e1e3735a6bd0a2e9f3b0a91f2"),
		BlockNumber: big.NewInt(4023999),
	}
}

func newTestRegistrar(store *storage.MockStorageClient, reg *registry.MockCIDRegistry, cfg Config) *Registrar {
	return NewWithClients(store, reg, cfg, testLogger())
}

func TestUploadAndRegisterPassthrough(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	payload := []byte("hello world")
	store.On("Add", mock.Anything, payload).Return(testCID, nil).Once()
	store.On("Name").Return("ipfs-test")
	reg.On("Store", mock.Anything, testCID).Return(successReceipt(), nil).Once()

	receipt, err := r.UploadAndRegister(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	// Exactly one add with exactly those bytes, exactly one store with
	// exactly the CID that add returned.
	store.AssertExpectations(t)
	reg.AssertExpectations(t)
}

func TestUploadAndRegisterFromPath(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte("file contents"), 0o600))

	store.On("Add", mock.Anything, []byte("file contents")).Return(testCID, nil).Once()
	store.On("Name").Return("ipfs-test")
	reg.On("Store", mock.Anything, testCID).Return(successReceipt(), nil).Once()

	_, err := r.UploadAndRegister(context.Background(), path)
	require.NoError(t, err)
	store.AssertExpectations(t)
	reg.AssertExpectations(t)
}

func TestUploadAndRegisterFromReader(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	store.On("Add", mock.Anything, []byte("streamed")).Return(testCID, nil).Once()
	store.On("Name").Return("ipfs-test")
	reg.On("Store", mock.Anything, testCID).Return(successReceipt(), nil).Once()

	_, err := r.UploadAndRegister(context.Background(), bytes.NewReader([]byte("streamed")))
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUploadAndRegisterInvalidSource(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	_, err := r.UploadAndRegister(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrInvalidInput)

	store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	reg.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestUploadAndRegisterMissingFile(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	_, err := r.UploadAndRegister(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrStorageUploadFailed)

	store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestUploadAndRegisterStorageFailure(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	cause := errors.New("ipfs node unavailable")
	store.On("Add", mock.Anything, mock.Anything).Return(interfaces.CID(""), cause).Once()

	_, err := r.UploadAndRegister(context.Background(), []byte("payload"))
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrStorageUploadFailed)
	assert.ErrorIs(t, err, cause)

	// A failed upload never reaches the registry write step.
	reg.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestUploadAndRegisterRegistryFailure(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	cause := errors.New("execution reverted")
	store.On("Add", mock.Anything, mock.Anything).Return(testCID, nil).Once()
	store.On("Name").Return("ipfs-test")
	reg.On("Store", mock.Anything, testCID).
		Return(nil, errors.Join(interfaces.ErrRegistryWriteFailed, cause)).Once()

	_, err := r.UploadAndRegister(context.Background(), []byte("payload"))
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrRegistryWriteFailed)
	assert.ErrorIs(t, err, cause)
}

func TestStoreCIDPassthrough(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	reg.On("Store", mock.Anything, interfaces.CID("Qm1")).Return(successReceipt(), nil).Once()

	receipt, err := r.StoreCID(context.Background(), "Qm1")
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	reg.AssertExpectations(t)
}

func TestStoreCIDNoSigner(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	reg.On("Store", mock.Anything, mock.Anything).Return(nil, interfaces.ErrNoSignerConfigured).Once()

	_, err := r.StoreCID(context.Background(), "Qm1")
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrNoSignerConfigured)
}

func TestListCIDsDefaultsDeploymentBlock(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	reg.On("StoredCIDs", mock.Anything, testOwner, DefaultDeploymentBlock).
		Return([]interfaces.CID{}, nil).Once()

	cids, err := r.ListCIDs(context.Background(), testOwner, 0)
	require.NoError(t, err)
	assert.NotNil(t, cids)
	assert.Empty(t, cids)
	reg.AssertExpectations(t)
}

func TestListCIDsExplicitFromBlock(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	reg.On("StoredCIDs", mock.Anything, testOwner, uint64(123456)).
		Return([]interfaces.CID{"Qm1", "Qm2"}, nil).Once()

	cids, err := r.ListCIDs(context.Background(), testOwner, 123456)
	require.NoError(t, err)
	assert.Equal(t, []interfaces.CID{"Qm1", "Qm2"}, cids)
}

func TestListCIDsQueryFailure(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	reg.On("StoredCIDs", mock.Anything, testOwner, mock.Anything).
		Return(nil, interfaces.ErrRegistryQueryFailed).Once()

	_, err := r.ListCIDs(context.Background(), testOwner, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrRegistryQueryFailed)
}

func TestAttachRegistersUnderNamespace(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{})

	host := NewHost(nil, nil, nil, testLogger())
	require.NoError(t, r.Attach(host))

	attached, ok := host.Plugin(DefaultPluginNamespace)
	require.True(t, ok)
	assert.Same(t, r, attached.(*Registrar))
}

func TestAttachCustomNamespace(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)
	r := newTestRegistrar(store, reg, Config{PluginNamespace: "ArchiveStorage"})

	host := NewHost(nil, nil, nil, testLogger())
	require.NoError(t, r.Attach(host))

	_, ok := host.Plugin(DefaultPluginNamespace)
	assert.False(t, ok)

	attached, ok := host.Plugin("ArchiveStorage")
	require.True(t, ok)
	assert.Same(t, r, attached.(*Registrar))
}

func TestHostRejectsDuplicateNamespace(t *testing.T) {
	store := new(storage.MockStorageClient)
	reg := new(registry.MockCIDRegistry)

	host := NewHost(nil, nil, nil, testLogger())
	first := newTestRegistrar(store, reg, Config{})
	second := newTestRegistrar(store, reg, Config{})

	require.NoError(t, first.Attach(host))
	assert.Error(t, second.Attach(host))
}

func TestHostRejectsEmptyNamespace(t *testing.T) {
	host := NewHost(nil, nil, nil, testLogger())
	assert.Error(t, host.RegisterPlugin("", nil))
}
