package storage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCID = "bafybeibml5uieyxa5tufngvg7fgwbkwvlsuntwbxgtskoqynbt7wlchmfmu"

// fakeIPFSAPI emulates the subset of the IPFS HTTP API the client uses:
// /api/v0/id for availability probes, /api/v0/version for the shell's lazy
// version handshake, /api/v0/add and /api/v0/cat for content.
type fakeIPFSAPI struct {
	addedData []byte
	authSeen  string
	catData   []byte
	down      bool
}

func (f *fakeIPFSAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			f.authSeen = auth
		}

		if f.down {
			http.Error(w, `{"Message":"node down","Code":0}`, http.StatusInternalServerError)
			return
		}

		switch r.URL.Path {
		case "/api/v0/id":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"ID":"12D3KooWTest"}`))
		case "/api/v0/version":
			// The shell fetches the node version lazily before its first
			// command.
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"Version":"0.24.0","Commit":""}`))
		case "/api/v0/add":
			mr, err := r.MultipartReader()
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			part, err := mr.NextPart()
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			f.addedData, _ = io.ReadAll(part)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"Name":"blob","Hash":"` + testCID + `","Size":"34"}`))
		case "/api/v0/cat":
			w.Write(f.catData)
		default:
			http.Error(w, "unexpected path: "+r.URL.Path, http.StatusNotFound)
		}
	})
}

func newTestClient(t *testing.T, api *fakeIPFSAPI, auth string) *IPFSClient {
	t.Helper()

	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewIPFSClient(Config{APIURL: srv.URL, Auth: auth}, logger)
}

func TestIPFSClientAdd(t *testing.T) {
	api := &fakeIPFSAPI{}
	client := newTestClient(t, api, "")

	cid, err := client.Add(context.Background(), []byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, testCID, cid.String())

	// The node must have received exactly the bytes that were submitted.
	assert.Equal(t, []byte("hello world"), api.addedData)
}

func TestIPFSClientAddWithAuth(t *testing.T) {
	api := &fakeIPFSAPI{}
	client := newTestClient(t, api, "Basic dXNlcjpwYXNz")

	_, err := client.Add(context.Background(), []byte("authenticated"))
	require.NoError(t, err)
	assert.Equal(t, "Basic dXNlcjpwYXNz", api.authSeen)
}

func TestIPFSClientAddUnavailable(t *testing.T) {
	api := &fakeIPFSAPI{down: true}
	client := newTestClient(t, api, "")

	_, err := client.Add(context.Background(), []byte("unreachable"))
	require.Error(t, err)
	assert.False(t, client.Available(context.Background()))
}

func TestIPFSClientCat(t *testing.T) {
	api := &fakeIPFSAPI{catData: []byte("stored content")}
	client := newTestClient(t, api, "")

	data, err := client.Cat(context.Background(), testCID)
	require.NoError(t, err)
	assert.Equal(t, []byte("stored content"), data)
}

func TestIPFSClientDefaults(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewIPFSClient(Config{}, logger)
	assert.Equal(t, "ipfs-"+DefaultAPIURL, client.Name())
}
