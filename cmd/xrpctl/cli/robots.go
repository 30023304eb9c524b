package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"allaboutxrp/usecase/catalog_usecase"
	"allaboutxrp/utils/robots"
)

var robotsCmd = &cobra.Command{
	Use:   "robots",
	Short: "Render robots.txt from the catalog",
	Long: `Render robots.txt, or test a path against it.

Examples:
  xrpctl robots                                  # Print robots.txt
  xrpctl robots --check /api/digest --agent GPTBot`,
	Args: cobra.NoArgs,
	RunE: runRobots,
}

func init() {
	rootCmd.AddCommand(robotsCmd)
	robotsCmd.Flags().String("check", "", "path to test instead of printing")
	robotsCmd.Flags().String("agent", "*", "user agent for --check")
}

func runRobots(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("check")
	if path == "" {
		body, err := catalog_usecase.NewRobotsUsecase(catalog).Execute(cmd.Context())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), body)
		return err
	}

	policy, err := catalog.RobotsPolicy(cmd.Context())
	if err != nil {
		return err
	}
	checker, err := robots.NewChecker(policy)
	if err != nil {
		return err
	}

	agent, _ := cmd.Flags().GetString("agent")
	verdict := "blocked"
	if checker.Allowed(agent, path) {
		verdict = "allowed"
	}
	printer := newPrinter(cmd)
	printer.Print("%s %s for %s", printer.Badge(verdict), path, agent)
	return nil
}
