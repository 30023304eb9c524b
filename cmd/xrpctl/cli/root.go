// Package cli contains the xrpctl commands
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"allaboutxrp/cmd/xrpctl/output"
	"allaboutxrp/gateway/catalog_gateway"
	"allaboutxrp/utils/logger"
)

var (
	cfgFile     string
	catalogPath string
	verbose     bool
	noColor     bool
	cfg         *Config
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "xrpctl",
	Short: "AllAboutXRP content tooling",
	Long: `xrpctl inspects the editorial catalog and digest payloads offline.

Example usage:
  xrpctl pages                       # List catalog pages
  xrpctl schema can-xrp-be-mined     # Print the JSON-LD for a page
  xrpctl robots --check /api/x       # Render robots.txt and test a path
  xrpctl preview digest.json         # Show what a viewer would see`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .xrpctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (overrides catalog.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func initConfig() error {
	level := "info"
	if verbose {
		level = "debug"
	}
	os.Setenv("LOG_LEVEL", level)
	logger.InitWithWriter(os.Stderr, false)

	var err error
	cfg, err = LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}

	slog.Debug("configuration loaded", "catalog", cfg.Catalog.Path, "site_url", cfg.Catalog.SiteURL)
	return nil
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), !noColor && output.UseColors(cfg.Output.Colors))
}

func openCatalog() (*catalog_gateway.CatalogGateway, error) {
	catalog, err := catalog_gateway.NewCatalogGateway(cfg.Catalog.Path, cfg.Catalog.SiteURL)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	return catalog, nil
}
