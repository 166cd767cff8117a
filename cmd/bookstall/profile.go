/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ideal-institute/bookstall/cmd"
	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/config"
	"github.com/ideal-institute/bookstall/internal/format"
	"github.com/spf13/cobra"
)

type profileClient interface {
	Profile(ctx context.Context, roll string) (app.Profile, error)
	ImageURL(rel string) string
}

// NewProfileCmd creates the profile command with explicit dependencies.
func NewProfileCmd(client profileClient) *cobra.Command {
	if client == nil {
		panic("NewProfileCmd: client dependency cannot be nil")
	}

	var formatName string

	profileCmd := &cobra.Command{
		Use:   "profile [roll-number]",
		Short: "Show a seller profile and their books",
		Long: `Show a seller profile and the books they are selling.

Without a roll number your own profile is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if formatName == "" {
				formatName = config.Get("list_format", string(format.FormatterTypeSimple))
			}
			formatterType, err := format.ParseType(formatName)
			if err != nil {
				return err
			}
			roll := ""
			if len(args) == 1 {
				roll = strings.TrimSpace(args[0])
			}

			profile, err := client.Profile(c.Context(), roll)
			if err != nil {
				return cmd.Describe(err)
			}

			out := c.OutOrStdout()
			formatter := format.NewFormatter(formatterType, client.ImageURL)
			if err := formatter.FormatUser(profile.User, out); err != nil {
				return err
			}
			if formatterType == format.FormatterTypeJSON || formatterType == format.FormatterTypeYAML {
				return formatter.FormatListings(profile.Books, out)
			}
			fmt.Fprintf(out, "Books listed: %d\n\n", len(profile.Books))
			return formatter.FormatListings(profile.Books, out)
		},
	}
	profileCmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: simple, table, json, yaml")
	return profileCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewProfileCmd(svc))
}
