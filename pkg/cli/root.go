package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

const name = "validate"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
)

// Execute runs the command with os.Args and exits non-zero on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	cmd := validateCmd()
	cmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	return cmd
}
