package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/uranus/pkg/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.New(version).Run(ctx, os.Args)
	switch {
	case err == nil:
		return
	case errors.Is(err, cli.ErrReportInvalid):
		stop()
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "uranus:", err)
		stop()
		os.Exit(2)
	}
}
