package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scriptenv",
	Short: "Environment-aware migration script filter",
	Long: `scriptenv lists the migration scripts that apply to a deployment environment.

Scripts are selected by directory name only. A directory whose name starts
with "_" (for example _dev, _test or _prod) holds environment-specific
scripts; everything else applies to every environment. Compound names such
as _dev_qa match when all their parts were requested, in request order.
Pipeline-stage directories (INIT, PRE, DRAFT, POST, ERASE, DROP, TRANSACTION)
are never treated as environments, with or without a leading "_".

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration, or environment directories found without an environment code
  14 - Working root not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
