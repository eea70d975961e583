package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/useleadnest/leadnest-cli/internal/api"
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Manage your subscription",
}

var billingCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Start a subscription checkout",
	Long: `Create a Stripe checkout session for a plan and print its URL.
Open the URL in a browser to complete payment.

Examples:
  leadnest billing checkout --plan starter
  leadnest billing checkout --plan pro`,
	RunE: runBillingCheckout,
}

var billingPortalCmd = &cobra.Command{
	Use:   "portal",
	Short: "Open the billing portal",
	Long: `Create a Stripe billing portal session and print its URL. The portal
manages payment methods, invoices, and cancellation.`,
	RunE: runBillingPortal,
}

func init() {
	billingCheckoutCmd.Flags().String("plan", "", "subscription plan (starter, pro, enterprise)")
	_ = billingCheckoutCmd.MarkFlagRequired("plan")

	billingCmd.AddCommand(billingCheckoutCmd, billingPortalCmd)
	rootCmd.AddCommand(billingCmd)
}

func runBillingCheckout(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd)
	if err != nil {
		return err
	}

	plan, _ := cmd.Flags().GetString("plan")
	url, err := a.Client.CheckoutSession(cmd.Context(), plan)
	if err != nil {
		return fmt.Errorf("failed to create checkout session: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"url": url})
	}
	fmt.Println("Open this URL in your browser to complete checkout:")
	fmt.Println(a.Styles.Key.Render(url))
	return nil
}

func runBillingPortal(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd)
	if err != nil {
		return err
	}

	url, err := a.Client.PortalSession(cmd.Context())
	if err != nil {
		if api.IsStatus(err, 404) {
			return NewErrorWithSuggestions(
				"No billing profile found for this account",
				err,
				"Subscribe first: leadnest billing checkout --plan starter",
			)
		}
		return fmt.Errorf("failed to create portal session: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"url": url})
	}
	fmt.Println("Open this URL in your browser to manage billing:")
	fmt.Println(a.Styles.Key.Render(url))
	return nil
}
