// Package registry provides a client for the on-chain CID registry contract.
//
// The package implements the interfaces.CIDRegistry interface, allowing the
// registrar to record content identifiers on Ethereum-compatible blockchains
// and to query the contract's historical CIDStored events.
//
// Key features include:
//
//   - Configurable contract interface: the ABI and deployed address are bound
//     at construction, with the built-in CIDRegistry interface as the default
//   - Call-time verification that the bound ABI exposes the store method and
//     the CIDStored event, distinguishing wiring errors from network errors
//   - Single-attempt writes that await inclusion and check the receipt status
//   - Historical event queries filtered by owner and block range, returned in
//     emission order
//
// Writes require transaction options set through SetTransactOpts; a client
// without them fails store calls with interfaces.ErrNoSignerConfigured before
// touching the network.
//
// MockCIDRegistry provides a testify mock of the interface for tests of
// components that consume the registry.
package registry
