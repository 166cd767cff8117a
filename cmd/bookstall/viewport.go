/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"strconv"

	"github.com/ideal-institute/bookstall/cmd"
	"github.com/ideal-institute/bookstall/internal/display"
	"github.com/ideal-institute/bookstall/internal/format"
	"github.com/spf13/cobra"
)

type viewportClient interface {
	CellSize() (width, height int)
}

// viewportReport is the output of the viewport command.
type viewportReport struct {
	display.State   `yaml:",inline"`
	Tier            string `json:"tier" yaml:"tier"`
	Blocked         bool   `json:"blocked" yaml:"blocked"`
	RequiredColumns int    `json:"required_columns" yaml:"required_columns"`
}

// NewViewportCmd creates the viewport command with explicit dependencies.
func NewViewportCmd(client viewportClient) *cobra.Command {
	if client == nil {
		panic("NewViewportCmd: client dependency cannot be nil")
	}

	var (
		cells      bool
		formatName string
	)

	viewportCmd := &cobra.Command{
		Use:   "viewport <width> [height]",
		Short: "Classify a viewport size as mobile, tablet or desktop",
		Long: `Classify a viewport size and report whether the marketplace would be blocked.

Widths below 768px are mobile, below 1024px tablet, anything wider desktop.
With --cells the size is given in terminal columns and rows and converted
with viewport_cell_width_px and viewport_cell_height_px.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid width %q: %w", args[0], err)
			}
			height := 0
			if len(args) == 2 {
				if height, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("invalid height %q: %w", args[1], err)
				}
			}
			cellW, cellH := client.CellSize()
			if cells {
				width, height = display.CellsToPixels(width, height, cellW, cellH)
			}

			state := display.Classify(width, height)
			report := viewportReport{
				State:           state,
				Tier:            state.Tier().String(),
				Blocked:         display.Blocked(state),
				RequiredColumns: display.RequiredColumns(cellW),
			}
			return printViewport(c, report, formatName)
		},
	}
	viewportCmd.Flags().BoolVar(&cells, "cells", false, "Size is in terminal cells rather than pixels")
	viewportCmd.Flags().StringVarP(&formatName, "format", "f", "simple", "Output format: simple, json, yaml")
	return viewportCmd
}

func printViewport(c *cobra.Command, report viewportReport, formatName string) error {
	out := c.OutOrStdout()
	t, err := format.ParseType(formatName)
	if err != nil {
		return err
	}
	switch t {
	case format.FormatterTypeJSON, format.FormatterTypeYAML:
		return format.Encode(t, report, out)
	}
	fmt.Fprintf(out, "width:            %dpx\n", report.Width)
	fmt.Fprintf(out, "height:           %dpx\n", report.Height)
	fmt.Fprintf(out, "tier:             %s\n", report.Tier)
	fmt.Fprintf(out, "blocked:          %t\n", report.Blocked)
	fmt.Fprintf(out, "required columns: %d\n", report.RequiredColumns)
	return nil
}

func init() {
	cmd.RootCmd.AddCommand(NewViewportCmd(svc))
}
