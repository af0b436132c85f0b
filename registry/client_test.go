package registry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrylabs/ipfs-registrar/bindings/cidregistry"
	"github.com/registrylabs/ipfs-registrar/interfaces"
)

// ABI variants for misconfiguration tests.
const (
	eventOnlyABI = `[{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"owner","type":"address"},{"indexed":false,"internalType":"string","name":"cid","type":"string"}],"name":"CIDStored","type":"event"}]`
	storeOnlyABI = `[{"inputs":[{"internalType":"string","name":"cid","type":"string"}],"name":"store","outputs":[],"stateMutability":"nonpayable","type":"function"}]`
)

// fakeBackend implements bind.ContractBackend and bind.DeployBackend with
// canned responses, counting every network call it receives.
type fakeBackend struct {
	logs      []types.Log
	filterErr error

	lastQuery ethereum.FilterQuery
	calls     int
}

func (b *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	b.calls++
	return []byte{0x01}, nil
}

func (b *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	b.calls++
	return nil, nil
}

func (b *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	b.calls++
	return &types.Header{Number: big.NewInt(1), BaseFee: big.NewInt(1)}, nil
}

func (b *fakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	b.calls++
	return []byte{0x01}, nil
}

func (b *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	b.calls++
	return 0, nil
}

func (b *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	b.calls++
	return big.NewInt(1), nil
}

func (b *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	b.calls++
	return big.NewInt(1), nil
}

func (b *fakeBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	b.calls++
	return 21000, nil
}

func (b *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.calls++
	return nil
}

func (b *fakeBackend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	b.calls++
	b.lastQuery = query
	if b.filterErr != nil {
		return nil, b.filterErr
	}
	return b.logs, nil
}

func (b *fakeBackend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	b.calls++
	return nil, errors.New("not supported")
}

func (b *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.calls++
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: txHash}, nil
}

var testContractAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func newTestClient(t *testing.T, backend *fakeBackend, abiJSON string) *CIDRegistryClient {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := NewCIDRegistryClient(backend, backend, testContractAddr, abiJSON, logger)
	require.NoError(t, err)
	return client
}

// storedLog builds a CIDStored log the way the contract emits it: owner in
// the first indexed topic, the CID string ABI-encoded in the data section.
func storedLog(t *testing.T, owner common.Address, cid string, block uint64, index uint) types.Log {
	t.Helper()

	parsed, err := abi.JSON(strings.NewReader(cidregistry.CIDRegistryMetaData.ABI))
	require.NoError(t, err)

	ev := parsed.Events["CIDStored"]
	data, err := ev.Inputs.NonIndexed().Pack(cid)
	require.NoError(t, err)

	return types.Log{
		Address:     testContractAddr,
		Topics:      []common.Hash{ev.ID, common.BytesToHash(owner.Bytes())},
		Data:        data,
		BlockNumber: block,
		Index:       index,
	}
}

func TestStoredCIDsOrdering(t *testing.T) {
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	// Deliver logs out of emission order; the client must sort them.
	backend := &fakeBackend{logs: []types.Log{
		storedLog(t, owner, "Qm2", 12, 0),
		storedLog(t, owner, "Qm1", 10, 3),
	}}
	client := newTestClient(t, backend, "")

	cids, err := client.StoredCIDs(context.Background(), owner, 100)
	require.NoError(t, err)
	assert.Equal(t, []interfaces.CID{"Qm1", "Qm2"}, cids)

	// The filter must target the bound contract, the requested range and
	// the owner topic.
	assert.Equal(t, []common.Address{testContractAddr}, backend.lastQuery.Addresses)
	assert.Equal(t, big.NewInt(100), backend.lastQuery.FromBlock)
	require.Len(t, backend.lastQuery.Topics, 2)
	assert.Equal(t, common.BytesToHash(owner.Bytes()), backend.lastQuery.Topics[1][0])
}

func TestStoredCIDsSameBlockOrdering(t *testing.T) {
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	backend := &fakeBackend{logs: []types.Log{
		storedLog(t, owner, "Qm2", 7, 5),
		storedLog(t, owner, "Qm1", 7, 2),
	}}
	client := newTestClient(t, backend, "")

	cids, err := client.StoredCIDs(context.Background(), owner, 0)
	require.NoError(t, err)
	assert.Equal(t, []interfaces.CID{"Qm1", "Qm2"}, cids)
}

func TestStoredCIDsEmpty(t *testing.T) {
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	backend := &fakeBackend{}
	client := newTestClient(t, backend, "")

	cids, err := client.StoredCIDs(context.Background(), owner, 0)
	require.NoError(t, err)
	assert.Empty(t, cids)

	// Identical arguments against unchanged state yield identical results.
	again, err := client.StoredCIDs(context.Background(), owner, 0)
	require.NoError(t, err)
	assert.Equal(t, cids, again)
}

func TestStoredCIDsQueryFailure(t *testing.T) {
	backend := &fakeBackend{filterErr: errors.New("rpc: connection refused")}
	client := newTestClient(t, backend, "")

	_, err := client.StoredCIDs(context.Background(), common.Address{}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrRegistryQueryFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

func testTransactor(t *testing.T) *bind.TransactOpts {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(1337))
	require.NoError(t, err)
	return auth
}

func TestStoreSuccess(t *testing.T) {
	backend := &fakeBackend{}
	client := newTestClient(t, backend, "")
	client.SetTransactOpts(testTransactor(t))

	receipt, err := client.Store(context.Background(), "Qm1")
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	assert.NotEqual(t, common.Hash{}, receipt.TxHash)
}

// revertedBackend reports every transaction as included but reverted.
type revertedBackend struct {
	*fakeBackend
}

func (b *revertedBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: txHash}, nil
}

func TestStoreReverted(t *testing.T) {
	backend := &fakeBackend{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := NewCIDRegistryClient(backend, &revertedBackend{backend}, testContractAddr, "", logger)
	require.NoError(t, err)
	client.SetTransactOpts(testTransactor(t))

	_, err = client.Store(context.Background(), "Qm1")
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrRegistryWriteFailed)
	assert.Contains(t, err.Error(), "reverted")
}

func TestStoreMethodMissing(t *testing.T) {
	backend := &fakeBackend{}
	client := newTestClient(t, backend, eventOnlyABI)

	_, err := client.Store(context.Background(), "Qm1")
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrContractMethodMissing)
	assert.Zero(t, backend.calls, "misconfigured ABI must fail before any network call")
}

func TestStoreNoSigner(t *testing.T) {
	backend := &fakeBackend{}
	client := newTestClient(t, backend, "")

	_, err := client.Store(context.Background(), "Qm1")
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrNoSignerConfigured)
	assert.Zero(t, backend.calls, "missing signer must fail before any network call")
}

func TestStoredCIDsEventMissing(t *testing.T) {
	backend := &fakeBackend{}
	client := newTestClient(t, backend, storeOnlyABI)

	_, err := client.StoredCIDs(context.Background(), common.Address{}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrContractMethodMissing)
	assert.Zero(t, backend.calls)
}
