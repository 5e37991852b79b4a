package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Mantelijo/sui-wallet-listener/internal/svc"
)

func main() {
	if err := newApp(svc.SuiWalletListener{}, os.Stdout).Run(context.Background(), os.Args); err != nil {
		slog.Error("sui-wallet-listener failed", slog.Any("error", err))
		os.Exit(1)
	}
}
