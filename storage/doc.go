// Package storage implements the content-addressed storage client used by
// the registrar.
//
// IPFSClient speaks the IPFS HTTP API through the go-ipfs-api shell. Adding
// bytes returns the node's CID unmodified; an optional Authorization
// credential can be attached to every API request at construction time.
//
// The package also provides MockStorageClient, a testify mock of
// interfaces.StorageClient for use in tests of components that consume the
// storage client.
package storage
