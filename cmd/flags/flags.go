// Package flags holds the CLI flags and setup helpers shared by the cmd
// binaries.
package flags

import (
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/registrylabs/ipfs-registrar/common"
	"github.com/registrylabs/ipfs-registrar/httpserver"
	"github.com/registrylabs/ipfs-registrar/interfaces"
	"github.com/registrylabs/ipfs-registrar/registrar"
)

func SetupLogger(cCtx *cli.Context) (log *slog.Logger) {
	logJSON := cCtx.Bool(LogJsonFlag.Name)
	logDebug := cCtx.Bool(LogDebugFlag.Name)
	logUID := cCtx.Bool(LogUidFlag.Name)
	logService := cCtx.String(LogServiceFlag.Name)

	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   logDebug,
		JSON:    logJSON,
		Service: logService,
		Version: common.Version,
	})

	if logUID {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

func ConfigureServer(cCtx *cli.Context, logger *slog.Logger, listenAddr string) *httpserver.HTTPServerConfig {
	metricsAddr := cCtx.String(MetricsAddrFlag.Name)
	enablePprof := cCtx.Bool(PprofFlag.Name)
	drainDuration := time.Duration(cCtx.Int64(DrainSecondsFlag.Name)) * time.Second

	return &httpserver.HTTPServerConfig{
		ListenAddr:               listenAddr,
		MetricsAddr:              metricsAddr,
		Log:                      logger,
		EnablePprof:              enablePprof,
		DrainDuration:            drainDuration,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             30 * time.Second,
	}
}

// ConfigureRegistrar builds the plugin config from CLI flags. Unset flags fall
// back to the registrar package defaults.
func ConfigureRegistrar(cCtx *cli.Context) (registrar.Config, error) {
	cfg := registrar.Config{
		PluginNamespace: cCtx.String(NamespaceFlag.Name),
		DeploymentBlock: cCtx.Uint64(DeploymentBlockFlag.Name),
		IPFSAPIURL:      cCtx.String(IpfsApiUrlFlag.Name),
		IPFSAuth:        cCtx.String(IpfsAuthFlag.Name),
	}

	if raw := cCtx.String(RegistryAddrFlag.Name); raw != "" {
		addr, err := interfaces.NewContractAddressFromHex(raw)
		if err != nil {
			return registrar.Config{}, fmt.Errorf("could not parse registry address: %w", err)
		}
		cfg.RegistryAddress = addr
	}

	if abiFile := cCtx.String(RegistryAbiFlag.Name); abiFile != "" {
		abiJSON, err := os.ReadFile(abiFile)
		if err != nil {
			return registrar.Config{}, fmt.Errorf("could not read registry ABI: %w", err)
		}
		cfg.RegistryABI = string(abiJSON)
	}

	return cfg, nil
}

// ConnectHost dials the RPC endpoint and creates a host context. The signing
// account comes from the private-key flag; without it the host is read-only.
func ConnectHost(cCtx *cli.Context, logger *slog.Logger) (*registrar.Host, error) {
	rpcAddress := cCtx.String(RpcAddrFlag.Name)

	logger.Info("Connecting to Ethereum RPC", "address", rpcAddress)
	ethClient, err := ethclient.Dial(rpcAddress)
	if err != nil {
		return nil, fmt.Errorf("could not dial RPC: %w", err)
	}

	var signer *bind.TransactOpts
	if rawKey := cCtx.String(PrivateKeyFlag.Name); rawKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(rawKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("could not parse private key: %w", err)
		}

		chainID := big.NewInt(cCtx.Int64(ChainIdFlag.Name))
		signer, err = bind.NewKeyedTransactorWithChainID(key, chainID)
		if err != nil {
			return nil, fmt.Errorf("could not create transactor: %w", err)
		}
		logger.Info("Signing account configured", "address", signer.From.Hex(), "chainID", chainID)
	}

	return registrar.NewHost(ethClient, ethClient, signer, logger), nil
}

var RpcAddrFlag = &cli.StringFlag{
	Name:  "rpc-addr",
	Value: "http://127.0.0.1:8545",
	Usage: "address to connect to RPC",
}
var PrivateKeyFlag = &cli.StringFlag{
	Name:    "private-key",
	Usage:   "hex-encoded private key of the signing account; omit for a read-only client",
	EnvVars: []string{"REGISTRAR_PRIVATE_KEY"},
}
var ChainIdFlag = &cli.Int64Flag{
	Name:  "chain-id",
	Value: 17000,
	Usage: "chain id used for transaction signing",
}
var RegistryAddrFlag = &cli.StringFlag{
	Name:  "registry-addr",
	Usage: "CID registry contract address, defaults to the canonical deployment",
}
var RegistryAbiFlag = &cli.StringFlag{
	Name:  "registry-abi",
	Usage: "path to a JSON ABI overriding the built-in registry interface",
}
var DeploymentBlockFlag = &cli.Uint64Flag{
	Name:  "deployment-block",
	Usage: "registry deployment block, the lower bound for event scans",
}
var IpfsApiUrlFlag = &cli.StringFlag{
	Name:  "ipfs-api-url",
	Usage: "IPFS node API address, defaults to localhost:5001",
}
var IpfsAuthFlag = &cli.StringFlag{
	Name:    "ipfs-auth",
	Usage:   "Authorization header value for the IPFS API",
	EnvVars: []string{"REGISTRAR_IPFS_AUTH"},
}
var NamespaceFlag = &cli.StringFlag{
	Name:  "namespace",
	Usage: "namespace the plugin registers under, defaults to IPFSStorage",
}

var LogJsonFlag = &cli.BoolFlag{
	Name:  "log-json",
	Value: false,
	Usage: "log in JSON format",
}
var LogDebugFlag = &cli.BoolFlag{
	Name:  "log-debug",
	Value: false,
	Usage: "log debug messages",
}
var LogUidFlag = &cli.BoolFlag{
	Name:  "log-uid",
	Value: false,
	Usage: "generate a uuid and add to all log messages",
}
var LogServiceFlag = &cli.StringFlag{
	Name:  "log-service",
	Value: common.PackageName,
	Usage: "add 'service' tag to logs",
}

var PprofFlag = &cli.BoolFlag{
	Name:  "pprof",
	Value: false,
	Usage: "enable pprof debug endpoint",
}
var DrainSecondsFlag = &cli.Int64Flag{
	Name:  "drain-seconds",
	Value: 45,
	Usage: "seconds to wait in drain HTTP request",
}
var MetricsAddrFlag = &cli.StringFlag{
	Name:  "metrics-addr",
	Value: "127.0.0.1:8090",
	Usage: "address to listen on for Prometheus metrics",
}

// RegistrarFlags configure the plugin itself and its network connection.
var RegistrarFlags = []cli.Flag{
	RpcAddrFlag,
	PrivateKeyFlag,
	ChainIdFlag,
	RegistryAddrFlag,
	RegistryAbiFlag,
	DeploymentBlockFlag,
	IpfsApiUrlFlag,
	IpfsAuthFlag,
	NamespaceFlag,
}

// CommonFlags configure logging and server diagnostics.
var CommonFlags = []cli.Flag{
	LogJsonFlag,
	LogDebugFlag,
	LogUidFlag,
	LogServiceFlag,
	PprofFlag,
	DrainSecondsFlag,
	MetricsAddrFlag,
}
