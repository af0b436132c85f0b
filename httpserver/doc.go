// Package httpserver exposes the registrar plugin over HTTP: file upload and
// registration on POST /api/upload and recorded-CID lookup on
// GET /api/cids/{account}, alongside liveness, readiness and drain endpoints
// and a separate Prometheus metrics listener.
package httpserver
