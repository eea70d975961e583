package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your account dashboard",
	Long: `Show the account dashboard: total searches, leads, exports, and the
remaining trial period.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd)
	if err != nil {
		return err
	}

	stats, err := a.Client.DashboardStats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	if flagJSON {
		return printJSON(stats)
	}

	fmt.Println(a.Styles.Title.Render("LeadNest Dashboard"))
	fmt.Printf("%s %d\n", a.Styles.Key.Render("Searches:"), stats.TotalSearches)
	fmt.Printf("%s %d\n", a.Styles.Key.Render("Leads:   "), stats.TotalLeads)
	fmt.Printf("%s %d\n", a.Styles.Key.Render("Exports: "), stats.TotalExports)
	if stats.TrialDaysLeft != nil {
		line := fmt.Sprintf("Trial: %d days left", *stats.TrialDaysLeft)
		if *stats.TrialDaysLeft <= 3 {
			fmt.Println(a.Styles.Warning.Render(line))
		} else {
			fmt.Println(a.Styles.Muted.Render(line))
		}
	}
	warnIfUnsubscribed(cmd, a)
	return nil
}

// warnIfUnsubscribed prints a one-line upgrade hint for accounts
// without an active subscription. Best-effort: a failed lookup never
// breaks the command.
func warnIfUnsubscribed(cmd *cobra.Command, a *App) {
	user, err := a.Client.Me(cmd.Context())
	if err != nil {
		a.Logger.WithError(err).Debug("failed to check subscription status")
		return
	}
	if !user.HasActiveSubscription() {
		fmt.Println(a.Styles.Warning.Render(
			"No active subscription. Upgrade with: leadnest billing checkout --plan starter"))
	}
}
