package cli

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"allaboutxrp/cmd/xrpctl/output"
)

var pagesCmd = &cobra.Command{
	Use:     "pages",
	Aliases: []string{"ls"},
	Short:   "List catalog pages",
	Long: `List the editorial pages in the catalog with their structured-data blocks.

Examples:
  xrpctl pages                 # Table view
  xrpctl pages --json          # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runPages,
}

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.Flags().Bool("json", false, "output as JSON")
}

func runPages(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return err
	}
	pages, err := catalog.ListPages(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(pages)
	}

	printer := newPrinter(cmd)
	printer.Header("Catalog Pages")

	table := output.NewTable(printer.Out(), []string{"slug", "title", "path", "faq", "howto", "modified"})
	for _, p := range pages {
		modified := p.DateModified
		if modified.IsZero() {
			modified = p.DatePublished
		}
		table.AddRow([]string{
			printer.Bold(p.Slug),
			p.Title,
			p.Path,
			strconv.Itoa(len(p.FAQ)),
			strconv.Itoa(len(p.HowTo)),
			modified.Format("2006-01-02"),
		})
	}
	if err := table.Render(); err != nil {
		return err
	}

	faqs, err := catalog.ListFAQs(cmd.Context())
	if err != nil {
		return err
	}
	printer.Print("\n%d pages, %d FAQ entries", len(pages), len(faqs))
	return nil
}
