package interfaces

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// StorageClient content-addresses arbitrary bytes on a storage network.
// Adding the same bytes twice yields the same CID, though the network may
// re-pin or re-announce the content on each call.
type StorageClient interface {
	// Add submits data to the storage network and returns its CID.
	Add(ctx context.Context, data []byte) (CID, error)

	// Available checks if the storage node is accessible.
	Available(ctx context.Context) bool

	// Name returns an identifier for logging.
	Name() string
}

// CIDRegistry provides access to the on-chain CID registry contract: a
// state-changing store call and a historical CIDStored event query.
type CIDRegistry interface {
	// Store submits a store(cid) transaction from the configured signing
	// account and awaits its inclusion. At most one write attempt is made
	// per invocation; retry policy belongs to the caller.
	Store(ctx context.Context, cid CID) (*types.Receipt, error)

	// StoredCIDs returns the CIDs recorded for owner in CIDStored events
	// between fromBlock and the latest block, in ascending block and log
	// index order. An empty result is not an error.
	StoredCIDs(ctx context.Context, owner common.Address, fromBlock uint64) ([]CID, error)
}

// StorageRegistrar is the capability a registrar plugin exposes once attached
// to a host context: upload bytes to storage and record the CID on chain, and
// look up previously recorded CIDs.
type StorageRegistrar interface {
	// UploadAndRegister resolves bytes from source (a filesystem path, a raw
	// byte buffer, or a reader), adds them to the storage network, and
	// records the resulting CID in the registry. The returned receipt
	// corresponds to the on-chain inclusion of the store call.
	UploadAndRegister(ctx context.Context, source any) (*types.Receipt, error)

	// StoreCID records an already obtained CID in the registry. The CID is
	// trusted to have come from the storage client's add operation.
	StoreCID(ctx context.Context, cid CID) (*types.Receipt, error)

	// ListCIDs returns the CIDs registered by owner since fromBlock. A
	// fromBlock of zero means the registry contract's deployment block.
	ListCIDs(ctx context.Context, owner common.Address, fromBlock uint64) ([]CID, error)
}

// PluginHost accepts registrar plugins under a namespace. Registration is an
// explicit, typed call: the plugin is a value implementing StorageRegistrar,
// not a dynamically attached property.
type PluginHost interface {
	// RegisterPlugin attaches plugin under namespace. Registering a second
	// plugin under an already taken namespace is an error.
	RegisterPlugin(namespace string, plugin StorageRegistrar) error
}
