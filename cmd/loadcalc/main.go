package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hvackit/loadcalc/internal/cli"
	"github.com/hvackit/loadcalc/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
