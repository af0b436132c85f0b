package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"github.com/registrylabs/ipfs-registrar/interfaces"
	"github.com/registrylabs/ipfs-registrar/metrics"
)

// maxBodySize caps upload request bodies (64MB). The registrar itself reads
// payloads fully into memory, so the HTTP layer bounds what it accepts.
const maxBodySize = 64 << 20

// Handler exposes the registrar plugin operations over HTTP.
type Handler struct {
	registrar interfaces.StorageRegistrar
	log       *slog.Logger
}

// NewHandler creates an HTTP handler around an attached registrar plugin.
func NewHandler(registrar interfaces.StorageRegistrar, log *slog.Logger) *Handler {
	return &Handler{
		registrar: registrar,
		log:       log,
	}
}

// uploadResponse summarizes the on-chain inclusion of a store call.
type uploadResponse struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	Status      uint64 `json:"status"`
}

// listResponse carries the CIDs recorded for an account.
type listResponse struct {
	Owner string   `json:"owner"`
	CIDs  []string `json:"cids"`
}

// HandleUpload handles POST /api/upload. The request body is the file
// content; the response summarizes the registry write receipt.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	}

	metrics.UploadBytes.Observe(float64(len(data)))

	receipt, err := h.registrar.UploadAndRegister(r.Context(), data)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		writeError(w, statusForError(err), err)
		return
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, uploadResponse{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		Status:      receipt.Status,
	})
}

// HandleListCIDs handles GET /api/cids/{account}. An optional from_block
// query parameter overrides the registry deployment block as the scan start.
func (h *Handler) HandleListCIDs(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")
	if !common.IsHexAddress(account) {
		metrics.LookupsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusBadRequest, errors.New("invalid account address: "+account))
		return
	}

	var fromBlock uint64
	if raw := r.URL.Query().Get("from_block"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			metrics.LookupsTotal.WithLabelValues("error").Inc()
			writeError(w, http.StatusBadRequest, errors.New("invalid from_block: "+raw))
			return
		}
		fromBlock = parsed
	}

	cids, err := h.registrar.ListCIDs(r.Context(), common.HexToAddress(account), fromBlock)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues("error").Inc()
		writeError(w, statusForError(err), err)
		return
	}

	out := make([]string, 0, len(cids))
	for _, cid := range cids {
		out = append(out, cid.String())
	}

	metrics.LookupsTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, listResponse{
		Owner: common.HexToAddress(account).Hex(),
		CIDs:  out,
	})
}

// statusForError maps stable error kinds to HTTP status codes. Wiring errors
// surface as 500, upstream failures as 502, bad requests as 400.
func statusForError(err error) int {
	switch {
	case errors.Is(err, interfaces.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, interfaces.ErrContractMethodMissing),
		errors.Is(err, interfaces.ErrNoSignerConfigured):
		return http.StatusInternalServerError
	case errors.Is(err, interfaces.ErrStorageUploadFailed),
		errors.Is(err, interfaces.ErrRegistryWriteFailed),
		errors.Is(err, interfaces.ErrRegistryQueryFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
