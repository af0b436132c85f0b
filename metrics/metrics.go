// Package metrics exposes Prometheus counters for registrar operations and a
// standalone metrics HTTP server.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// UploadsTotal counts upload-and-register operations by outcome.
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registrar_uploads_total",
		Help: "Number of upload-and-register operations, by outcome.",
	}, []string{"result"})

	// LookupsTotal counts list-CIDs operations by outcome.
	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registrar_lookups_total",
		Help: "Number of list-CIDs operations, by outcome.",
	}, []string{"result"})

	// UploadBytes observes the size of uploaded payloads.
	UploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "registrar_upload_bytes",
		Help:    "Size in bytes of uploaded payloads.",
		Buckets: prometheus.ExponentialBuckets(256, 4, 10),
	})
)

// MetricsServer serves the Prometheus scrape endpoint on its own listener.
type MetricsServer struct {
	srv *http.Server
}

// New creates a metrics server listening on listenAddr. The name is kept for
// identification in process listings and error messages.
func New(name, listenAddr string) (*MetricsServer, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		srv: &http.Server{
			Addr:    listenAddr,
			Handler: mux,
		},
	}, nil
}

// ListenAndServe blocks serving the scrape endpoint.
func (s *MetricsServer) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
