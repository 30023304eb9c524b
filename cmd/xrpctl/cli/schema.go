package cli

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	"allaboutxrp/usecase/catalog_usecase"
	"allaboutxrp/utils/structured_data"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <slug>",
	Short: "Print the JSON-LD for a catalog page",
	Long: `Print the structured data a catalog page is served with.

Examples:
  xrpctl schema can-xrp-be-mined           # One JSON array
  xrpctl schema can-xrp-be-mined --html    # One <script> block per record`,
	Args: cobra.ExactArgs(1),
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().Bool("html", false, "emit ld+json script blocks")
}

func runSchema(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return err
	}
	records, err := catalog_usecase.NewStructuredDataUsecase(catalog, catalog.SiteURL()).ForPage(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asHTML, _ := cmd.Flags().GetBool("html"); asHTML {
		blocks, err := structured_data.RenderEach(records...)
		if err != nil {
			return err
		}
		for _, b := range blocks {
			if _, err := out.Write([]byte(`<script type="application/ld+json">` + string(b) + "</script>\n")); err != nil {
				return err
			}
		}
		return nil
	}

	raw, err := structured_data.Render(records...)
	if err != nil {
		return err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return err
	}
	pretty.WriteByte('\n')
	_, err = pretty.WriteTo(out)
	return err
}
