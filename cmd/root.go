/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/

// Package cmd holds the root command shared by every bookstall subcommand.
package cmd

import (
	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/config"
	"github.com/ideal-institute/bookstall/internal/errors"
	"github.com/ideal-institute/bookstall/internal/logging"
	"github.com/ideal-institute/bookstall/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Flags shared by every subcommand.
var (
	apiURLFlag  string
	debugFlag   bool
	quietFlag   bool
	envFileFlag string
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = NewRootCmd()

// NewRootCmd creates the root command. Subcommands register themselves on
// RootCmd from their init functions.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookstall",
		Short: "Buy and sell used textbooks with fellow students",
		Long: `bookstall is a terminal client for the campus textbook marketplace.

Log in with your roll number, browse and filter the books other students are
selling, list your own books with photos and manage your listings, from the
command line or the interactive TUI.`,
		Version:           version.String(),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.ShutdownGlobal()
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	root.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Catalog API base URL (overrides api_base_url)")
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output")
	root.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Only print errors and warnings")
	root.PersistentFlags().StringVar(&envFileFlag, "env-file", "", "Load environment variables from this file instead of .env")
	return root
}

// setup loads .env files, the configuration and the logger before any
// subcommand runs. Flags win over the environment and the config file.
func setup(cmd *cobra.Command, args []string) error {
	if envFileFlag != "" {
		if err := godotenv.Load(envFileFlag); err != nil {
			return err
		}
	} else {
		// .env is optional
		_ = godotenv.Load()
	}

	if apiURLFlag != "" {
		config.Set("api_base_url", apiURLFlag)
	}
	if debugFlag {
		config.Set("debug", "true")
	}
	if quietFlag {
		config.Set("quiet", "true")
	}
	config.Load()

	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning("file logging disabled: " + err.Error())
	}
	logging.Debug("command started", "command", cmd.CommandPath(), "args", len(args))
	return nil
}

// UserError is an error whose message is the student-facing description of
// the underlying error.
type UserError struct {
	Err error
}

func (e *UserError) Error() string { return errors.Describe(e.Err) }

func (e *UserError) Unwrap() error { return e.Err }

// Describe wraps err so that it prints as a student-facing message. A nil err
// stays nil.
func Describe(err error) error {
	if err == nil {
		return nil
	}
	logging.Error("command failed", "error", err)
	return &UserError{Err: err}
}
