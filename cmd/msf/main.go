package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mysportsfeeds/internal/cli"
	msferrors "github.com/matzehuels/mysportsfeeds/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var verbose bool
	if err := run(ctx, &verbose); err != nil {
		os.Exit(report(os.Stderr, err, verbose))
	}
}

func run(ctx context.Context, verbose *bool) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	root.PersistentFlags().BoolVarP(verbose, "verbose", "v", false, "log each request and debug details")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// report prints err to w and returns the process exit code. Coded errors
// print their message alone unless verbose is set.
func report(w io.Writer, err error, verbose bool) int {
	if errors.Is(err, context.Canceled) {
		return 130 // Standard shell convention for SIGINT
	}
	if verbose {
		fmt.Fprintln(w, "Error:", err)
	} else {
		fmt.Fprintln(w, "Error:", msferrors.UserMessage(err))
		if errors.Unwrap(err) != nil {
			fmt.Fprintln(w, "Run with --verbose for details.")
		}
	}
	return exitCode(err)
}

// exitCode maps usage and configuration errors to 2 and everything else
// to 1.
func exitCode(err error) int {
	switch msferrors.GetCode(err) {
	case msferrors.ErrCodeInvalidInput, msferrors.ErrCodeInvalidConfig, msferrors.ErrCodeUnknownFeed,
		msferrors.ErrCodeUnsupportedFormat, msferrors.ErrCodeAuthRequired:
		return 2
	default:
		return 1
	}
}
