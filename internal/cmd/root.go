package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagJSON    bool
	flagAPIURL  string
)

var rootCmd = &cobra.Command{
	Use:   "leadnest",
	Short: "LeadNest lead-generation CLI",
	Long: `leadnest is the command-line client for the LeadNest lead-generation
platform. It manages your session, your leads table (list, add, browse,
CSV bulk import), billing, and the ROI dashboard.

Configure the backend with LEADNEST_API_URL or api_base_url in
~/.leadnest/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output machine-readable JSON")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "override the backend base URL")
}
