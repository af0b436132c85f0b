package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/registrylabs/ipfs-registrar/cmd/flags"
	"github.com/registrylabs/ipfs-registrar/httpserver"
	"github.com/registrylabs/ipfs-registrar/registrar"
)

var serverFlags = append([]cli.Flag{
	&cli.StringFlag{
		Name:  "listen-addr",
		Value: "127.0.0.1:8080",
		Usage: "address to listen on for API",
	},
}, append(flags.RegistrarFlags, flags.CommonFlags...)...)

func main() {
	app := &cli.App{
		Name:  "registrar-server",
		Usage: "Serve the IPFS registrar API: upload files, record their CIDs on chain, list recorded CIDs",
		Flags: serverFlags,
		Action: func(cCtx *cli.Context) error {
			listenAddr := cCtx.String("listen-addr")

			logger := flags.SetupLogger(cCtx)

			host, err := flags.ConnectHost(cCtx, logger)
			if err != nil {
				logger.Error("Failed to connect host", "err", err)
				return err
			}

			pluginCfg, err := flags.ConfigureRegistrar(cCtx)
			if err != nil {
				logger.Error("Invalid registrar configuration", "err", err)
				return err
			}

			plugin, err := registrar.New(host, pluginCfg, logger)
			if err != nil {
				logger.Error("Failed to create registrar", "err", err)
				return err
			}
			if err := plugin.Attach(host); err != nil {
				logger.Error("Failed to register plugin", "err", err)
				return err
			}

			cfg := flags.ConfigureServer(cCtx, logger, listenAddr)
			server, err := httpserver.New(cfg, httpserver.NewHandler(plugin, logger))
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			logger.Info("Starting server", "namespace", plugin.Namespace())
			server.RunInBackground()

			// Wait for termination signal
			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			logger.Info("Server shutdown complete")

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
