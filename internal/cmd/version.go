package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/useleadnest/leadnest-cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()

	if flagJSON {
		return printJSON(info)
	}
	if flagVerbose {
		fmt.Println(info.String())
		return nil
	}
	fmt.Printf("leadnest %s\n", info.Short())
	return nil
}
