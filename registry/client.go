// Package registry provides the client for the on-chain CID registry
// contract: a store(cid) write path and a CIDStored historical event query.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/registrylabs/ipfs-registrar/bindings/cidregistry"
	"github.com/registrylabs/ipfs-registrar/interfaces"
)

const (
	storeMethod = "store"
	storedEvent = "CIDStored"
)

// CIDRegistryClient implements the interfaces.CIDRegistry interface for
// interacting with a CIDRegistry smart contract deployed on a blockchain.
//
// The contract interface is configurable: callers may supply their own ABI
// JSON at construction, and the client verifies at call time that the bound
// interface actually exposes the operation it is about to use.
type CIDRegistryClient struct {
	abi      abi.ABI
	contract *bind.BoundContract
	backend  bind.DeployBackend
	address  common.Address
	auth     *bind.TransactOpts
	log      *slog.Logger
}

// NewCIDRegistryClient creates a new client for the registry contract at the
// specified address. It requires a ContractBackend for reads and event
// filtering and a DeployBackend for awaiting transaction inclusion. An empty
// abiJSON selects the built-in CIDRegistry interface description.
func NewCIDRegistryClient(client bind.ContractBackend, backend bind.DeployBackend, address common.Address, abiJSON string, log *slog.Logger) (*CIDRegistryClient, error) {
	if abiJSON == "" {
		abiJSON = cidregistry.CIDRegistryMetaData.ABI
	}

	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("invalid registry ABI: %w", err)
	}

	return &CIDRegistryClient{
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, client, client, client),
		backend:  backend,
		address:  address,
		log:      log,
	}, nil
}

// SetTransactOpts sets the transaction options required for store calls.
// This must be called before any method that sends transactions.
func (c *CIDRegistryClient) SetTransactOpts(auth *bind.TransactOpts) {
	c.auth = auth
}

// Address returns the deployed contract address this client is bound to.
func (c *CIDRegistryClient) Address() common.Address {
	return c.address
}

// Store submits a store(cid) transaction from the configured signing account
// and awaits its inclusion. Exactly one write attempt is made; retry policy
// belongs to the caller.
func (c *CIDRegistryClient) Store(ctx context.Context, cid interfaces.CID) (*types.Receipt, error) {
	if _, ok := c.abi.Methods[storeMethod]; !ok {
		return nil, fmt.Errorf("%w: bound ABI has no %q method", interfaces.ErrContractMethodMissing, storeMethod)
	}
	if c.auth == nil {
		return nil, interfaces.ErrNoSignerConfigured
	}

	opts := *c.auth
	if opts.Context == nil {
		opts.Context = ctx
	}

	tx, err := c.contract.Transact(&opts, storeMethod, cid.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", interfaces.ErrRegistryWriteFailed, err)
	}

	c.log.Debug("Submitted store transaction",
		slog.String("cid", cid.String()),
		slog.String("tx", tx.Hash().Hex()),
		slog.String("contract", c.address.Hex()))

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: awaiting inclusion of %s: %w", interfaces.ErrRegistryWriteFailed, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: transaction %s reverted", interfaces.ErrRegistryWriteFailed, tx.Hash().Hex())
	}

	return receipt, nil
}

// StoredCIDs queries the contract's historical CIDStored events emitted for
// owner between fromBlock and the latest block. Results are ordered by block
// number and log index ascending; an empty result is not an error.
func (c *CIDRegistryClient) StoredCIDs(ctx context.Context, owner common.Address, fromBlock uint64) ([]interfaces.CID, error) {
	if _, ok := c.abi.Events[storedEvent]; !ok {
		return nil, fmt.Errorf("%w: bound ABI has no %q event", interfaces.ErrContractMethodMissing, storedEvent)
	}

	opts := &bind.FilterOpts{Start: fromBlock, Context: ctx}
	logs, sub, err := c.contract.FilterLogs(opts, storedEvent, []interface{}{owner})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", interfaces.ErrRegistryQueryFailed, err)
	}
	defer sub.Unsubscribe()

	var events []cidregistry.CIDRegistryCIDStored
	for {
		select {
		case lg := <-logs:
			ev, err := c.unpackStored(lg)
			if err != nil {
				return nil, err
			}
			events = append(events, ev)

		case err := <-sub.Err():
			if err != nil {
				return nil, fmt.Errorf("%w: %w", interfaces.ErrRegistryQueryFailed, err)
			}
			// Filtering finished, drain whatever is still buffered.
			for {
				select {
				case lg := <-logs:
					ev, err := c.unpackStored(lg)
					if err != nil {
						return nil, err
					}
					events = append(events, ev)
				default:
					return collectCIDs(events), nil
				}
			}
		}
	}
}

func (c *CIDRegistryClient) unpackStored(lg types.Log) (cidregistry.CIDRegistryCIDStored, error) {
	var ev cidregistry.CIDRegistryCIDStored
	if err := c.contract.UnpackLog(&ev, storedEvent, lg); err != nil {
		return ev, fmt.Errorf("%w: decoding CIDStored log: %w", interfaces.ErrRegistryQueryFailed, err)
	}
	ev.Raw = lg
	return ev, nil
}

// collectCIDs orders events by emission position and strips them down to the
// CID strings.
func collectCIDs(events []cidregistry.CIDRegistryCIDStored) []interfaces.CID {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Raw.BlockNumber != events[j].Raw.BlockNumber {
			return events[i].Raw.BlockNumber < events[j].Raw.BlockNumber
		}
		return events[i].Raw.Index < events[j].Raw.Index
	})

	cids := make([]interfaces.CID, 0, len(events))
	for _, ev := range events {
		cids = append(cids, interfaces.CID(ev.Cid))
	}
	return cids
}
