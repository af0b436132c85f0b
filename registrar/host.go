package registrar

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/registrylabs/ipfs-registrar/interfaces"
)

// Host is a client context plugins attach to. It owns the network connection
// (contract backend plus deploy backend, typically both the same ethclient)
// and the default signing account, and keeps the registered plugins keyed by
// namespace.
type Host struct {
	backend bind.ContractBackend
	deploy  bind.DeployBackend
	signer  *bind.TransactOpts
	log     *slog.Logger

	mu      sync.RWMutex
	plugins map[string]interfaces.StorageRegistrar
}

// NewHost creates a host context around an established network connection.
// signer may be nil for a read-only host; writes through plugins on such a
// host fail with interfaces.ErrNoSignerConfigured.
func NewHost(backend bind.ContractBackend, deploy bind.DeployBackend, signer *bind.TransactOpts, log *slog.Logger) *Host {
	return &Host{
		backend: backend,
		deploy:  deploy,
		signer:  signer,
		log:     log,
		plugins: make(map[string]interfaces.StorageRegistrar),
	}
}

// RegisterPlugin attaches plugin under namespace. A namespace can be taken
// only once.
func (h *Host) RegisterPlugin(namespace string, plugin interfaces.StorageRegistrar) error {
	if namespace == "" {
		return errors.New("empty plugin namespace")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, taken := h.plugins[namespace]; taken {
		return fmt.Errorf("plugin namespace already registered: %s", namespace)
	}
	h.plugins[namespace] = plugin

	h.log.Info("Plugin registered", slog.String("namespace", namespace))
	return nil
}

// Plugin returns the plugin registered under namespace, if any.
func (h *Host) Plugin(namespace string) (interfaces.StorageRegistrar, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	plugin, ok := h.plugins[namespace]
	return plugin, ok
}

// Backend returns the host's contract backend.
func (h *Host) Backend() bind.ContractBackend {
	return h.backend
}

// DeployBackend returns the host's deploy backend.
func (h *Host) DeployBackend() bind.DeployBackend {
	return h.deploy
}

// Signer returns the host's default signing account options, or nil if the
// host is read-only.
func (h *Host) Signer() *bind.TransactOpts {
	return h.signer
}

var _ interfaces.PluginHost = (*Host)(nil)
