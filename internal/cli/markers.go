package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vvka-141/scriptenv/internal/envfilter"
)

var lsCmd = &cobra.Command{
	Use:   "ls <root>",
	Short: "List environment markers used under a root",
	Long: `Ls prints the environment directory names (markers) that govern scripts
under <root>, one per line, in the order they are first met. Use it to find
out which codes a deployment needs.

Examples:
  scriptenv ls ./migrations`,
	Args:              RequireRoot,
	ValidArgsFunction: completeRoot,
	RunE:              runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	cc, err := newCommandContext(cmd, args[0], nil)
	if err != nil {
		return err
	}

	absRoot, files, err := cc.scanner.Discover(args[0])
	if err != nil {
		return err
	}

	markers := envfilter.Markers(absRoot, files)
	if len(markers) == 0 {
		cc.logger.Info("No environment directories under %s", absRoot)
		return nil
	}

	out := cmd.OutOrStdout()
	for _, m := range markers {
		fmt.Fprintln(out, m)
	}
	return nil
}
