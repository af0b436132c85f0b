package registrar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/registrylabs/ipfs-registrar/interfaces"
	"github.com/registrylabs/ipfs-registrar/registry"
	"github.com/registrylabs/ipfs-registrar/storage"
)

// Registrar bridges a local file source to a content-addressed store and the
// resulting identifier to an on-chain registry, in both write and read
// directions. It implements interfaces.StorageRegistrar.
//
// A registrar holds its storage client and registry binding for the lifetime
// of the host process; neither is mutated after construction, so concurrent
// invocations need no synchronization beyond what the underlying clients
// provide. Two concurrent uploads for the same account produce two
// independent registry writes with no ordering guarantee.
type Registrar struct {
	storage  interfaces.StorageClient
	registry interfaces.CIDRegistry
	cfg      Config
	log      *slog.Logger
}

// New creates a registrar wired to the host's network connection and signing
// account, with an IPFS storage client built from cfg.
func New(host *Host, cfg Config, log *slog.Logger) (*Registrar, error) {
	cfg = cfg.withDefaults()

	store := storage.NewIPFSClient(storage.Config{
		APIURL: cfg.IPFSAPIURL,
		Auth:   cfg.IPFSAuth,
	}, log)

	reg, err := registry.NewCIDRegistryClient(
		host.Backend(),
		host.DeployBackend(),
		common.BytesToAddress(cfg.RegistryAddress.Bytes()),
		cfg.RegistryABI,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("creating registry client: %w", err)
	}
	if auth := host.Signer(); auth != nil {
		reg.SetTransactOpts(auth)
	}

	return NewWithClients(store, reg, cfg, log), nil
}

// NewWithClients creates a registrar around explicit collaborators. Used by
// tests and by hosts that manage their own storage or registry clients.
func NewWithClients(store interfaces.StorageClient, reg interfaces.CIDRegistry, cfg Config, log *slog.Logger) *Registrar {
	return &Registrar{
		storage:  store,
		registry: reg,
		cfg:      cfg.withDefaults(),
		log:      log,
	}
}

// Attach registers the plugin on host under its configured namespace.
func (r *Registrar) Attach(host interfaces.PluginHost) error {
	return host.RegisterPlugin(r.cfg.PluginNamespace, r)
}

// Namespace returns the namespace the registrar attaches under.
func (r *Registrar) Namespace() string {
	return r.cfg.PluginNamespace
}

// UploadAndRegister resolves bytes from source, adds them to the storage
// network, and records the resulting CID in the registry. source may be a
// filesystem path (string), a raw byte buffer ([]byte), or an io.Reader;
// paths are read fully into memory, no streaming and no size limit at this
// layer.
func (r *Registrar) UploadAndRegister(ctx context.Context, source any) (*types.Receipt, error) {
	data, err := resolveBytes(source)
	if err != nil {
		r.log.Error("Resolving file source failed", "err", err)
		return nil, err
	}

	cid, err := r.storage.Add(ctx, data)
	if err != nil {
		r.log.Error("Upload to storage failed", "err", err, slog.Int("size", len(data)))
		return nil, fmt.Errorf("%w: %w", interfaces.ErrStorageUploadFailed, err)
	}

	r.log.Info("Uploaded content",
		slog.String("cid", cid.String()),
		slog.Int("size", len(data)),
		slog.String("storage", r.storage.Name()))

	return r.StoreCID(ctx, cid)
}

// StoreCID records an already obtained CID in the registry and awaits
// inclusion. The CID is trusted to have come from the storage client's add
// operation; it is passed through unmodified.
func (r *Registrar) StoreCID(ctx context.Context, cid interfaces.CID) (*types.Receipt, error) {
	receipt, err := r.registry.Store(ctx, cid)
	if err != nil {
		// The registry client already tagged the failure with its kind.
		r.log.Error("Registry write failed", "err", err, slog.String("cid", cid.String()))
		return nil, err
	}

	r.log.Info("CID recorded in registry",
		slog.String("cid", cid.String()),
		slog.String("tx", receipt.TxHash.Hex()),
		slog.Uint64("block", receipt.BlockNumber.Uint64()))

	return receipt, nil
}

// ListCIDs returns the CIDs registered by owner since fromBlock, in ascending
// block and log index order. A fromBlock of zero means the configured
// registry deployment block. An empty result is returned as an empty slice,
// never as an error.
func (r *Registrar) ListCIDs(ctx context.Context, owner common.Address, fromBlock uint64) ([]interfaces.CID, error) {
	if fromBlock == 0 {
		fromBlock = r.cfg.DeploymentBlock
	}

	cids, err := r.registry.StoredCIDs(ctx, owner, fromBlock)
	if err != nil {
		r.log.Error("Registry query failed",
			"err", err,
			slog.String("owner", owner.Hex()),
			slog.Uint64("fromBlock", fromBlock))
		return nil, err
	}

	if len(cids) == 0 {
		r.log.Info("No CIDs found",
			slog.String("owner", owner.Hex()),
			slog.Uint64("fromBlock", fromBlock))
		return []interfaces.CID{}, nil
	}

	r.log.Info("Found stored CIDs",
		slog.Int("count", len(cids)),
		slog.String("owner", owner.Hex()),
		slog.Uint64("fromBlock", fromBlock))

	return cids, nil
}

// resolveBytes turns an accepted file source into the bytes to upload.
func resolveBytes(source any) ([]byte, error) {
	switch src := source.(type) {
	case []byte:
		return src, nil
	case string:
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", interfaces.ErrStorageUploadFailed, src, err)
		}
		return data, nil
	case io.Reader:
		data, err := io.ReadAll(src)
		if err != nil {
			return nil, fmt.Errorf("%w: reading source: %w", interfaces.ErrStorageUploadFailed, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: unsupported source type %T", interfaces.ErrInvalidInput, source)
	}
}

var _ interfaces.StorageRegistrar = (*Registrar)(nil)
