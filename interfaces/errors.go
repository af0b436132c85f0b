package interfaces

import "errors"

// Stable error kinds for registrar operations. Every failure crossing an
// operation boundary wraps both the kind sentinel and the original cause, so
// callers can match the kind with errors.Is while diagnostics keep the root
// cause intact.
var (
	// ErrInvalidInput is returned when an upload is given a file source of an
	// unsupported type.
	ErrInvalidInput = errors.New("invalid file source")

	// ErrStorageUploadFailed is returned when the content-addressing step
	// failed, either because the file could not be read or because the
	// storage client's add operation failed.
	ErrStorageUploadFailed = errors.New("storage upload failed")

	// ErrContractMethodMissing is returned when the bound registry interface
	// lacks the store method. This is a configuration error, not a network
	// error: no network call is attempted.
	ErrContractMethodMissing = errors.New("registry contract method missing")

	// ErrNoSignerConfigured is returned when a registry write is attempted
	// without a default signing account on the host context. Checked before
	// any network call.
	ErrNoSignerConfigured = errors.New("no signer configured")

	// ErrRegistryWriteFailed is returned when the on-chain store call could
	// not be sent, was not included, or reverted.
	ErrRegistryWriteFailed = errors.New("registry write failed")

	// ErrRegistryQueryFailed is returned when the historical event query
	// failed. An empty result set is not a failure.
	ErrRegistryQueryFailed = errors.New("registry query failed")
)
