/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"fmt"

	"github.com/ideal-institute/bookstall/cmd"
	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/config"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/format"
	"github.com/ideal-institute/bookstall/internal/formatter"
	"github.com/spf13/cobra"
)

type listClient interface {
	Browse(ctx context.Context, input app.BrowseInput) ([]domain.Listing, error)
	ImageURL(rel string) string
}

const listCommandLong = `List the books other students are selling.

All filters are optional and combined:
    --search <text>         Title contains text (case-insensitive)
    --regulation <R20|R23>  Exact regulation
    --branch <branch>       Subject or category equals branch (CSE, COS, CSM, ECE, MECH, EEE)
    --year <year>           Book year, e.g. "2nd Year" or "First Year"
    --include-own           Include your own listings
    --format <format>       simple (default from list_format), table, json, yaml
    --template <template>   One line per book; a preset (compact, detailed, sellers, tsv)
                            or a template such as "${book-name} ${price}"`

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client listClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var (
		criteria   domain.Criteria
		includeOwn bool
		formatName string
		template   string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List books for sale",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if formatName == "" {
				formatName = config.Get("list_format", string(format.FormatterTypeSimple))
			}
			formatterType, err := format.ParseType(formatName)
			if err != nil {
				return err
			}
			engine := formatter.NewTemplateEngine()
			lineTemplate := formatter.Resolve(formatter.NewPresetRegistry(), template)
			if _, err := engine.Parse(lineTemplate); err != nil {
				return err
			}
			if criteria.Regulation != "" && !domain.IsRegulation(criteria.Regulation) {
				return fmt.Errorf("invalid regulation %q (must be R20 or R23)", criteria.Regulation)
			}

			listings, err := client.Browse(c.Context(), app.BrowseInput{Criteria: criteria, IncludeOwn: includeOwn})
			if err != nil {
				return cmd.Describe(err)
			}
			out := c.OutOrStdout()
			if template != "" {
				return formatter.WriteListings(engine, lineTemplate, listings, client.ImageURL, out)
			}
			if len(listings) == 0 && (formatterType == format.FormatterTypeSimple || formatterType == format.FormatterTypeTable) {
				fmt.Fprintln(out, app.MsgNoBooks)
				return nil
			}
			return format.NewFormatter(formatterType, client.ImageURL).FormatListings(listings, out)
		},
	}

	listCmd.Flags().StringVar(&criteria.Text, "search", "", "Title contains text (case-insensitive)")
	listCmd.Flags().StringVar(&criteria.Regulation, "regulation", "", "Regulation: R20 or R23")
	listCmd.Flags().StringVar(&criteria.Branch, "branch", "", "Branch matched against subject or category")
	listCmd.Flags().StringVar(&criteria.Year, "year", "", "Book year")
	listCmd.Flags().BoolVar(&includeOwn, "include-own", false, "Include your own listings")
	listCmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: simple, table, json, yaml")
	listCmd.Flags().StringVarP(&template, "template", "t", "", "Template or preset for one line per book")
	return listCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewListCmd(svc))
}
