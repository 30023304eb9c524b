package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"allaboutxrp/domain"
	"allaboutxrp/usecase/access_usecase"
)

var previewCmd = &cobra.Command{
	Use:   "preview <digest.json>",
	Short: "Show what a viewer would see for a digest",
	Long: `Render the access decision for a digest row exported as JSON.

Examples:
  xrpctl preview digest.json                # Anonymous viewer
  xrpctl preview digest.json --subscribed   # Pro viewer
  xrpctl preview digest.json --json         # Full decision as JSON`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Bool("subscribed", false, "render for a subscribed viewer")
	previewCmd.Flags().Bool("loading", false, "render while entitlement is unresolved")
	previewCmd.Flags().Bool("json", false, "output as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading digest: %w", err)
	}
	var digest domain.Digest
	if err := json.Unmarshal(data, &digest); err != nil {
		return fmt.Errorf("parsing digest: %w", err)
	}
	if err := digest.Validate(); err != nil {
		return fmt.Errorf("invalid digest: %w", err)
	}

	subscribed, _ := cmd.Flags().GetBool("subscribed")
	loading, _ := cmd.Flags().GetBool("loading")
	status := domain.SubscriptionStatus{Subscribed: subscribed, SubscriptionLoading: loading}
	decision := access_usecase.RenderAccessDecision(&digest, status)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(decision)
	}

	printer := newPrinter(cmd)
	printer.Header(digest.DisplayTitle())
	printer.Print("%s  %s", printer.Dim(digest.WeekStart.Format("2006-01-02")+" to "+digest.WeekEnd.Format("2006-01-02")), printer.Badge(string(decision.Kind)))

	switch decision.Kind {
	case domain.AccessLoading:
		printer.Print("entitlement unresolved, nothing gated is shown")
	case domain.AccessPaywall:
		printer.Print("\n%s", decision.Paywall.Preview)
		if decision.Paywall.Truncated {
			printer.Print("%s", printer.Dim("(preview truncated)"))
		}
		printer.Print("\nupgrade: %s  sign in: %s", decision.Paywall.UpgradeURL, decision.Paywall.SignInURL)
	case domain.AccessFull:
		if decision.Price != nil {
			printer.Print("price: %s -> %s %s", decision.Price.Open, decision.Price.Close, decision.Price.ChangePct)
		}
		if decision.Sentiment != nil {
			printer.Print("sentiment: %s", printer.Badge(decision.Sentiment.Value))
		}
		if decision.HTML != "" {
			printer.Print("body: cleaned HTML, %d bytes", len(decision.HTML))
			break
		}
		for _, s := range decision.Sections {
			printer.Print("- %s", printer.Bold(s.Heading))
		}
	}
	return nil
}
