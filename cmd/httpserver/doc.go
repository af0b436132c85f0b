// Command httpserver runs the registrar API server: file upload and CID
// registration over HTTP, backed by an IPFS node and the on-chain CID
// registry.
package main
