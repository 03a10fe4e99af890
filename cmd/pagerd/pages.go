package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pagerd/internal/pager"
)

func buildPagesCmd() *cobra.Command {
	var current, total, perPage, maxSize int
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "pages",
		Short:   "Print the page link sequence for a collection",
		Example: "  pagerd pages --current 5 --total 95 --per-page 10\n  pagerd pages --current 12 --total 400 --per-page 20 --max-size 7 --json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if total < 0 {
				return fmt.Errorf("--total must not be negative")
			}
			res := pager.Pages(current, total, perPage, maxSize)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(res)
			}
			parts := make([]string, len(res.Pages))
			for i, p := range res.Pages {
				parts[i] = fmt.Sprint(p)
			}
			fmt.Fprintln(out, strings.Join(parts, " "))
			fmt.Fprintf(out, "showing %d - %d of %d (%d pages)\n", res.Range.Lower, res.Range.Upper, res.Range.Total, res.TotalPages)
			return nil
		},
	}
	cmd.Flags().IntVar(&current, "current", 1, "Current page")
	cmd.Flags().IntVar(&total, "total", 0, "Total number of items")
	cmd.Flags().IntVar(&perPage, "per-page", 10, "Items per page")
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "Number of page links (0 selects 9, minimum 5)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
