// Package registrar implements the storage registrar plugin: upload a file
// to a content-addressed storage network, record the resulting CID in an
// on-chain registry contract, and look up previously recorded CIDs.
//
// A Registrar is constructed against a Host context, from which it inherits
// the network connection and the default signing account, and attaches to the
// host under a configurable namespace through an explicit, typed registration
// call. Three operations are exposed:
//
//   - UploadAndRegister: resolve bytes from a path, buffer, or reader, add
//     them to IPFS, and record the returned CID on chain
//   - StoreCID: record an already obtained CID on chain
//   - ListCIDs: scan the registry's CIDStored event history for an account
//
// Each operation is a single-shot request/response chain with no retained
// cross-call state, no internal retries, and no internal parallelism.
// Configuration is explicit through Config; every unset field falls back to a
// documented default.
package registrar
