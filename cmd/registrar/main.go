package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"

	"github.com/registrylabs/ipfs-registrar/cmd/flags"
	"github.com/registrylabs/ipfs-registrar/interfaces"
	"github.com/registrylabs/ipfs-registrar/registrar"
	"github.com/registrylabs/ipfs-registrar/storage"
)

var flagOwner = &cli.StringFlag{
	Name:  "owner",
	Usage: "account to list CIDs for, defaults to the signing account",
}
var flagFromBlock = &cli.Uint64Flag{
	Name:  "from-block",
	Usage: "block to scan from, defaults to the registry deployment block",
}

func main() {
	app := &cli.App{
		Name:  "registrar",
		Usage: "Upload files to IPFS and record their CIDs in the on-chain registry",
		Flags: append(flags.RegistrarFlags, flags.LogJsonFlag, flags.LogDebugFlag, flags.LogServiceFlag),
		Commands: []*cli.Command{
			{
				Name:        "upload",
				Usage:       "upload a file to IPFS and record its CID on chain",
				ArgsUsage:   "<file>",
				Description: "Adds the file to IPFS, then submits a store(cid) transaction from the signing account and waits for inclusion.",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return fmt.Errorf("expected exactly one file argument, got %d", cCtx.NArg())
					}
					plugin, _, err := setupRegistrar(cCtx)
					if err != nil {
						return err
					}

					receipt, err := plugin.UploadAndRegister(cCtx.Context, cCtx.Args().First())
					if err != nil {
						return fmt.Errorf("upload failed: %w", err)
					}
					return printReceipt(receipt.TxHash.Hex(), receipt.BlockNumber.Uint64(), receipt.Status)
				},
			},
			{
				Name:        "store",
				Usage:       "record an already uploaded CID on chain",
				ArgsUsage:   "<cid>",
				Description: "Submits a store(cid) transaction without touching IPFS. The CID is passed through as-is.",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return fmt.Errorf("expected exactly one CID argument, got %d", cCtx.NArg())
					}
					plugin, _, err := setupRegistrar(cCtx)
					if err != nil {
						return err
					}

					receipt, err := plugin.StoreCID(cCtx.Context, interfaces.CID(cCtx.Args().First()))
					if err != nil {
						return fmt.Errorf("store failed: %w", err)
					}
					return printReceipt(receipt.TxHash.Hex(), receipt.BlockNumber.Uint64(), receipt.Status)
				},
			},
			{
				Name:        "fetch",
				Usage:       "fetch content from IPFS by CID",
				ArgsUsage:   "<cid>",
				Description: "Reads the content behind a CID from the IPFS node and writes it to stdout. No chain connection is made.",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return fmt.Errorf("expected exactly one CID argument, got %d", cCtx.NArg())
					}
					logger := flags.SetupLogger(cCtx)
					store := storage.NewIPFSClient(storage.Config{
						APIURL: cCtx.String(flags.IpfsApiUrlFlag.Name),
						Auth:   cCtx.String(flags.IpfsAuthFlag.Name),
					}, logger)

					data, err := store.Cat(cCtx.Context, interfaces.CID(cCtx.Args().First()))
					if err != nil {
						return fmt.Errorf("fetch failed: %w", err)
					}
					_, err = os.Stdout.Write(data)
					return err
				},
			},
			{
				Name:        "list",
				Usage:       "list CIDs recorded for an account",
				Flags:       []cli.Flag{flagOwner, flagFromBlock},
				Description: "Scans the registry's CIDStored event history and prints the recorded CIDs in block order.",
				Action: func(cCtx *cli.Context) error {
					plugin, host, err := setupRegistrar(cCtx)
					if err != nil {
						return err
					}

					owner, err := resolveOwner(cCtx, host)
					if err != nil {
						return err
					}

					cids, err := plugin.ListCIDs(cCtx.Context, owner, cCtx.Uint64(flagFromBlock.Name))
					if err != nil {
						return fmt.Errorf("list failed: %w", err)
					}

					out := make([]string, 0, len(cids))
					for _, cid := range cids {
						out = append(out, cid.String())
					}
					encoded, _ := json.Marshal(map[string]any{
						"owner": owner.Hex(),
						"cids":  out,
					})
					fmt.Println(string(encoded))
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupRegistrar(cCtx *cli.Context) (*registrar.Registrar, *registrar.Host, error) {
	logger := flags.SetupLogger(cCtx)

	host, err := flags.ConnectHost(cCtx, logger)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := flags.ConfigureRegistrar(cCtx)
	if err != nil {
		return nil, nil, err
	}

	plugin, err := registrar.New(host, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := plugin.Attach(host); err != nil {
		return nil, nil, err
	}
	return plugin, host, nil
}

// resolveOwner picks the account to query: the --owner flag if set, otherwise
// the signing account derived from --private-key.
func resolveOwner(cCtx *cli.Context, host *registrar.Host) (common.Address, error) {
	if raw := cCtx.String(flagOwner.Name); raw != "" {
		if !common.IsHexAddress(raw) {
			return common.Address{}, fmt.Errorf("invalid owner address: %s", raw)
		}
		return common.HexToAddress(raw), nil
	}

	if host.Signer() == nil {
		return common.Address{}, fmt.Errorf("no owner given and no signing account configured")
	}
	return host.Signer().From, nil
}

func printReceipt(txHash string, blockNumber, status uint64) error {
	encoded, _ := json.Marshal(map[string]any{
		"tx_hash":      txHash,
		"block_number": blockNumber,
		"status":       status,
	})
	fmt.Println(string(encoded))
	return nil
}
