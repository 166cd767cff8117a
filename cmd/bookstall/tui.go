/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ideal-institute/bookstall/cmd"
	"github.com/ideal-institute/bookstall/internal/colors"
	tuiapp "github.com/ideal-institute/bookstall/internal/tui/app"
	"github.com/spf13/cobra"
)

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client tuiapp.Client) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive marketplace",
		Long: `Open the interactive marketplace.

The TUI needs a desktop-sized terminal; a narrower terminal shows a
placeholder with the number of columns required.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			model, err := client.CreateModel()
			if err != nil {
				return cmd.Describe(err)
			}
			colors.DisableStructuredLogging()
			defer colors.EnableStructuredLogging()
			return client.RunProgram(model)
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewTUICmd(tuiapp.NewDefaultClient(tuiapp.DepsLoaderFunc(svc.TUIDeps), nil)))
}
