// Command registrar is the CLI client: upload a file to IPFS and record its
// CID on chain, record an existing CID, fetch content back by CID, or list
// the CIDs recorded for an account.
package main
