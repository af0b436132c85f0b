// Package interfaces defines core interfaces and types for the storage
// registrar, separating interface definitions from implementations.
//
// The package provides interfaces for the key components of the system:
//
// # Storage Interfaces
//
// StorageClient: Content-addresses arbitrary bytes on a storage network and
// returns the resulting CID. The IPFS implementation lives in the storage
// package.
//
// # Registry Interfaces
//
// CIDRegistry: Provides the two registry contract operations the registrar
// needs, a state-changing store(cid) call and a historical CIDStored event
// query filtered by owner and block range.
//
// # Plugin Interfaces
//
// StorageRegistrar: The capability a registrar plugin exposes once attached
// to a host context (upload-and-register, store-CID, list-CIDs).
//
// PluginHost: The typed registration point a host context offers plugins,
// keyed by namespace.
//
// # Type Definitions
//
//   - CID: An opaque content identifier string, produced only by the storage
//     client and passed through unmodified.
//   - ContractAddress: A 20-byte Ethereum address.
//
// # Error Kinds
//
// Operations fail with a stable kind sentinel (ErrInvalidInput,
// ErrStorageUploadFailed, ErrContractMethodMissing, ErrNoSignerConfigured,
// ErrRegistryWriteFailed, ErrRegistryQueryFailed) wrapped together with the
// original cause.
package interfaces
