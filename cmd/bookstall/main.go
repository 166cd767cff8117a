// Command bookstall is the campus textbook marketplace client.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/ideal-institute/bookstall/cmd"
	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/version"
)

// execute runs the root command with args. Can be changed for testing.
var execute = func(ctx context.Context, args []string) error {
	cmd.RootCmd.SetArgs(args)
	return fang.Execute(
		ctx,
		cmd.RootCmd,
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	)
}

func run(ctx context.Context, args []string) int {
	colors.StructuredInfo("startup", "main", "started", nil, "", nil)
	defer func() {
		if err := svc.Close(); err != nil {
			colors.StructuredWarn("shutdown", "close_session", "failed", err, "", nil)
		}
	}()

	if err := execute(ctx, args); err != nil {
		colors.StructuredError("startup", "main", "failed", err, "", nil)
		return 1
	}
	colors.StructuredInfo("startup", "main", "completed", nil, "", nil)
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}
