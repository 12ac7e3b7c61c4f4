package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/spella-cli/cgo/hunspell"
	"github.com/custodia-labs/spella-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/spella-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/spella-cli/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, err := file.NewSessionStore("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "spella:", err)
		os.Exit(1)
	}

	words, err := sqlite.NewWordStore("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "spella:", err)
		os.Exit(1)
	}
	defer words.Close()

	cli.Configure(hunspell.Factory{}, sessions, words)

	if err := cli.ExecuteContext(ctx, version); err != nil {
		os.Exit(1)
	}
}
