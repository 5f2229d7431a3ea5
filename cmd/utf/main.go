// Command utf inspects, verifies, packs and unpacks UTF containers.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"

	"github.com/meigma/utf/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, cli.NewRootCmd(version)); err != nil {
		stop()
		os.Exit(1)
	}
}
