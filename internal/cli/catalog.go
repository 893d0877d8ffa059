package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/chazuruo/progressive-workflow/internal/workflows"
	"github.com/chazuruo/progressive-workflow/internal/workflows/store"
)

// OutputFormat defines the output format for the catalog command.
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
	FormatPlain OutputFormat = "plain"
)

// CatalogOptions contains the options for the catalog command.
type CatalogOptions struct {
	Format string
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand() *cobra.Command {
	opts := &CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog [base_dir]",
		Short: "List the available workflows",
		Long: `List every workflow under the base directory with its id, name and
description. Steps and args are never read.

A missing base directory is an error.

Examples:
  pwf catalog                    # JSON
  pwf catalog --format table     # aligned columns
  pwf catalog .claude/workflows  # explicit base directory`,
		Args: rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", string(FormatJSON), "output format (json, table, plain)")

	return cmd
}

func runCatalog(cmd *cobra.Command, opts *CatalogOptions, args []string) error {
	format := OutputFormat(opts.Format)
	switch format {
	case FormatJSON, FormatTable, FormatPlain:
	default:
		return usageError(cmd, fmt.Sprintf("invalid format %q (must be json, table, or plain)", opts.Format))
	}

	baseDir, err := resolveBaseDir(optionalArg(args, 0))
	if err != nil {
		return err
	}

	svc := workflows.NewService(store.New(baseDir))
	entries, err := svc.Catalog(cmd.Context(), workflows.CatalogOptions{RequireDir: true})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case FormatTable:
		printCatalogTable(out, entries)
	case FormatPlain:
		printCatalogPlain(out, entries)
	default:
		return writeJSON(out, entries)
	}
	return nil
}

// printCatalogTable prints entries as aligned columns.
func printCatalogTable(w io.Writer, entries []workflows.CatalogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No workflows found.")
		return
	}

	header := lipgloss.NewStyle().Bold(true)
	tbl := table.New("ID", "NAME", "DESCRIPTION").WithWriter(w)
	tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
		return header.Render(fmt.Sprintf(format, vals...))
	})
	for _, e := range entries {
		desc := e.Description
		if desc == "" {
			desc = "-"
		}
		tbl.AddRow(e.ID, e.Name, desc)
	}
	tbl.Print()

	fmt.Fprintf(w, "\nTotal: %d workflow(s)\n", len(entries))
}

// printCatalogPlain prints one numbered block per entry.
func printCatalogPlain(w io.Writer, entries []workflows.CatalogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No workflows found.")
		return
	}

	for i, e := range entries {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, e.Name, e.ID)
		if e.Description != "" {
			fmt.Fprintf(w, "   %s\n", e.Description)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d workflow(s)\n", len(entries))
}
