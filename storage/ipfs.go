package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	shell "github.com/ipfs/go-ipfs-api"

	"github.com/registrylabs/ipfs-registrar/interfaces"
)

// DefaultAPIURL is the IPFS HTTP API endpoint used when none is configured.
const DefaultAPIURL = "localhost:5001"

// Config holds the construction-time configuration for an IPFS client.
type Config struct {
	// APIURL is the IPFS API endpoint, either host:port or a full URL.
	// Defaults to DefaultAPIURL.
	APIURL string

	// Auth is an optional Authorization header value, for example
	// "Basic <credentials>" or "Bearer <token>". Empty means no
	// authentication.
	Auth string
}

// IPFSClient implements interfaces.StorageClient over the IPFS HTTP API.
type IPFSClient struct {
	shell  *shell.Shell
	apiURL string
	log    *slog.Logger
}

// NewIPFSClient creates a storage client connected to the IPFS node at
// cfg.APIURL. When cfg.Auth is set, every API request carries it as the
// Authorization header.
func NewIPFSClient(cfg Config, log *slog.Logger) *IPFSClient {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	var sh *shell.Shell
	if cfg.Auth != "" {
		sh = shell.NewShellWithClient(apiURL, &http.Client{
			Transport: &authTransport{base: http.DefaultTransport, auth: cfg.Auth},
		})
	} else {
		sh = shell.NewShell(apiURL)
	}

	return &IPFSClient{
		shell:  sh,
		apiURL: apiURL,
		log:    log,
	}
}

// Add content-addresses data on the IPFS node and returns the resulting CID.
// The CID is returned exactly as the node produced it.
func (c *IPFSClient) Add(ctx context.Context, data []byte) (interfaces.CID, error) {
	start := time.Now()

	if !c.shell.IsUp() {
		c.log.Warn("IPFS node unavailable", slog.String("api", c.apiURL))
		return "", fmt.Errorf("ipfs node unavailable: %s", c.apiURL)
	}

	cid, err := c.shell.Add(bytes.NewReader(data))
	if err != nil {
		c.log.Error("Failed to add data to IPFS",
			"err", err,
			slog.String("api", c.apiURL),
			slog.Int("size", len(data)),
			slog.Duration("duration", time.Since(start)))
		return "", fmt.Errorf("failed to add data to IPFS: %w", err)
	}

	c.log.Debug("Added content to IPFS",
		slog.String("cid", cid),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return interfaces.CID(cid), nil
}

// Cat retrieves content from the IPFS node by its CID.
func (c *IPFSClient) Cat(ctx context.Context, cid interfaces.CID) ([]byte, error) {
	start := time.Now()

	reader, err := c.shell.Cat(cid.String())
	if err != nil {
		if strings.Contains(err.Error(), "no link named") {
			c.log.Debug("Content not found in IPFS", slog.String("cid", cid.String()))
			return nil, fmt.Errorf("content not found: %s", cid)
		}

		c.log.Error("Failed to fetch data from IPFS",
			"err", err,
			slog.String("cid", cid.String()),
			slog.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to fetch data from IPFS: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read data from IPFS: %w", err)
	}

	c.log.Debug("Fetched content from IPFS",
		slog.String("cid", cid.String()),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return data, nil
}

// Available checks if the IPFS node is accessible.
func (c *IPFSClient) Available(ctx context.Context) bool {
	return c.shell.IsUp()
}

// Name returns a unique identifier for this storage client.
func (c *IPFSClient) Name() string {
	return fmt.Sprintf("ipfs-%s", c.apiURL)
}

// authTransport injects a static Authorization header into every request.
type authTransport struct {
	base http.RoundTripper
	auth string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", t.auth)
	return t.base.RoundTrip(req)
}
