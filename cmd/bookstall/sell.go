/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ideal-institute/bookstall/cmd"
	"github.com/ideal-institute/bookstall/internal/catalogapi"
	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/spf13/cobra"
)

type sellClient interface {
	Sell(ctx context.Context, listing domain.NewListing) (catalogapi.Result, error)
}

type deleteClient interface {
	Delete(ctx context.Context, id domain.FlexValue) (catalogapi.Result, error)
}

// readPhotoFile reads photos from disk. Can be changed for testing.
var readPhotoFile = os.ReadFile

func loadPhotos(paths []string) ([]domain.Photo, error) {
	if len(paths) > domain.MaxPhotos {
		return nil, fmt.Errorf("at most %d photos allowed, got %d", domain.MaxPhotos, len(paths))
	}
	photos := make([]domain.Photo, 0, len(paths))
	for _, p := range paths {
		data, err := readPhotoFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read photo: %w", err)
		}
		photos = append(photos, domain.Photo{Filename: filepath.Base(p), Data: data})
	}
	return photos, nil
}

// NewSellCmd creates the sell command with explicit dependencies.
func NewSellCmd(client sellClient) *cobra.Command {
	if client == nil {
		panic("NewSellCmd: client dependency cannot be nil")
	}

	var (
		listing domain.NewListing
		photos  []string
	)

	sellCmd := &cobra.Command{
		Use:   "sell <book-name>",
		Short: "List a book for sale",
		Long: `List a book for sale under your roll number.

Branch must be one of CSE, COS, CSM, ECE, MECH, EEE; regulation R20 or R23;
condition New, "Like New" or Used. Up to two photos of at most 5MB each.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			listing.Title = strings.TrimSpace(args[0])
			loaded, err := loadPhotos(photos)
			if err != nil {
				return err
			}
			listing.Photos = loaded

			res, err := client.Sell(c.Context(), listing)
			if err != nil {
				return cmd.Describe(err)
			}
			colors.Success(res.Message)
			if res.Debug != "" {
				colors.Debug("Upload debug:", res.Debug)
			}
			return nil
		},
	}

	sellCmd.Flags().StringVar(&listing.Subject, "subject", "", "Subject of the book")
	sellCmd.Flags().StringVar(&listing.Category, "branch", "", "Branch: CSE, COS, CSM, ECE, MECH, EEE")
	sellCmd.Flags().StringVar(&listing.Regulation, "regulation", "", "Regulation: R20 or R23")
	sellCmd.Flags().StringVar(&listing.BookYear, "year", "", `Year, e.g. "2nd Year"`)
	sellCmd.Flags().StringVar(&listing.Condition, "condition", "", `Condition: New, "Like New" or Used`)
	sellCmd.Flags().StringVar(&listing.Price, "price", "", "Price in rupees")
	sellCmd.Flags().StringVar(&listing.Description, "description", "", "Description")
	sellCmd.Flags().StringArrayVar(&photos, "photo", nil, "Photo file (repeat for a second photo)")
	return sellCmd
}

// parseBookID keeps integer ids numeric, as the API lists them.
func parseBookID(s string) domain.FlexValue {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return domain.NumberValue(float64(n))
	}
	return domain.StringValue(s)
}

// NewDeleteCmd creates the delete command with explicit dependencies.
func NewDeleteCmd(client deleteClient) *cobra.Command {
	if client == nil {
		panic("NewDeleteCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "delete <book-id>",
		Short: "Delete one of your listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			res, err := client.Delete(c.Context(), parseBookID(args[0]))
			if err != nil {
				return cmd.Describe(err)
			}
			colors.Success(res.Message)
			return nil
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewSellCmd(svc), NewDeleteCmd(svc))
}
