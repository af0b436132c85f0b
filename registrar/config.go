package registrar

import (
	"github.com/registrylabs/ipfs-registrar/bindings/cidregistry"
	"github.com/registrylabs/ipfs-registrar/interfaces"
	"github.com/registrylabs/ipfs-registrar/storage"
)

// Defaults applied by Config. All configuration is explicit: a zero field
// selects the documented default below, nothing is read from ambient globals.
const (
	// DefaultPluginNamespace is the namespace the registrar registers under
	// on its host context.
	DefaultPluginNamespace = "IPFSStorage"

	// DefaultRegistryAddress is the deployed CIDRegistry contract address
	// used when none is configured.
	DefaultRegistryAddress = "0x1c36a2f6cb7a9b2efa0b3d85f4ba1e1bf45e35ae"

	// DefaultDeploymentBlock is the block number the default registry
	// contract was deployed at, used as the lower bound for event scans.
	DefaultDeploymentBlock uint64 = 4023179

	// DefaultIPFSAPIURL is the IPFS API endpoint used when none is
	// configured.
	DefaultIPFSAPIURL = storage.DefaultAPIURL
)

// Config holds the construction-time configuration of a registrar plugin.
//
//	Field            Zero value selects
//	PluginNamespace  DefaultPluginNamespace
//	RegistryABI      the built-in CIDRegistry interface description
//	RegistryAddress  DefaultRegistryAddress
//	DeploymentBlock  DefaultDeploymentBlock
//	IPFSAPIURL       DefaultIPFSAPIURL
//	IPFSAuth         no authentication
type Config struct {
	// PluginNamespace is the name the plugin is registered under on the
	// host context.
	PluginNamespace string

	// RegistryABI is the JSON interface description of the registry
	// contract.
	RegistryABI string

	// RegistryAddress is the deployed registry contract address.
	RegistryAddress interfaces.ContractAddress

	// DeploymentBlock is the registry contract's deployment block, the
	// default lower bound for ListCIDs scans.
	DeploymentBlock uint64

	// IPFSAPIURL is the IPFS API endpoint the storage client connects to.
	IPFSAPIURL string

	// IPFSAuth is an optional Authorization header value for the IPFS API.
	IPFSAuth string
}

func (c Config) withDefaults() Config {
	if c.PluginNamespace == "" {
		c.PluginNamespace = DefaultPluginNamespace
	}
	if c.RegistryABI == "" {
		c.RegistryABI = cidregistry.CIDRegistryMetaData.ABI
	}
	if c.RegistryAddress.Equal(interfaces.ContractAddress{}) {
		// The default address constant is well-formed, the error path is
		// unreachable.
		addr, _ := interfaces.NewContractAddressFromHex(DefaultRegistryAddress)
		c.RegistryAddress = addr
	}
	if c.DeploymentBlock == 0 {
		c.DeploymentBlock = DefaultDeploymentBlock
	}
	if c.IPFSAPIURL == "" {
		c.IPFSAPIURL = DefaultIPFSAPIURL
	}
	return c
}
