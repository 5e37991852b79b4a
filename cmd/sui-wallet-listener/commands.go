package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/Mantelijo/sui-wallet-listener/internal/wallet"
)

type service interface {
	Setup() error
	Serve(ctx context.Context) error
	Wallet() (wallet.WalletInfo, error)
	Fund(ctx context.Context, address string) (string, error)
}

// newApp builds the command tree. Every command loads the configuration
// before doing anything else, serve is the default.
func newApp(s service, out io.Writer) *cli.Command {
	serve := serveCommand(s)

	return &cli.Command{
		Name:        "sui-wallet-listener",
		Description: "Monitors a Sui wallet, reports its transactions and executes withdrawals.",
		Usage:       "sui-wallet-listener [command] [flags]",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, s.Setup()
		},
		Action: serve.Action,
		Commands: []*cli.Command{
			serve,
			walletCommand(s, out),
			fundCommand(s, out),
		},
	}
}

// serveCommand runs the listener and the http api until interrupted.
//
//	sui-wallet-listener serve
func serveCommand(s service) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Monitors the configured wallet and serves the http api. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return s.Serve(ctx)
		},
	}
}

// walletCommand prints the wallet derived from SUI_PRIVATE_KEY.
//
//	sui-wallet-listener wallet --show-private-key
func walletCommand(s service, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "wallet",
		Usage: "Prints the address of the configured wallet.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "show-private-key",
				Usage: "Also print the hex encoded private key seed",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			info, err := s.Wallet()
			if err != nil {
				return err
			}
			if !c.Bool("show-private-key") {
				info.PrivateKey = ""
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Address    string `json:"address"`
				PrivateKey string `json:"privateKey,omitempty"`
			}{info.Address, info.PrivateKey})
		},
	}
}

// fundCommand requests test SUI from the network faucet.
//
//	sui-wallet-listener fund --address 0xABC123...
func fundCommand(s service, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "fund",
		Usage: "Requests faucet funds for the configured wallet or the given address. Not available on mainnet.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to fund, defaults to the configured wallet",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			digest, err := s.Fund(ctx, c.String("address"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "funded, transaction digest: %s\n", digest)
			return err
		},
	}
}
