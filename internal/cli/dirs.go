package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs <root>",
	Short: "List the directories that apply to an environment",
	Long: `Dirs lists every directory below <root> and prints the ones that apply to
the requested environment codes. A directory's own name counts: _dev is
kept for -e dev and skipped for -e prod, together with everything beneath it.

Examples:
  scriptenv dirs ./migrations -e dev`,
	Args:              RequireRoot,
	ValidArgsFunction: completeRoot,
	RunE:              runDirs,
}

type dirsFlagValues struct {
	environments []string
	relative     bool
}

var dirsFlags dirsFlagValues

func init() {
	rootCmd.AddCommand(dirsCmd)

	dirsCmd.Flags().StringArrayVarP(&dirsFlags.environments, "environment", "e", nil,
		"Environment code (repeatable, or comma-separated)")
	dirsCmd.Flags().BoolVar(&dirsFlags.relative, "relative", false, "Print paths relative to <root>")
	_ = dirsCmd.RegisterFlagCompletionFunc("environment", completeEnvironmentCodes)
}

func runDirs(cmd *cobra.Command, args []string) error {
	root := args[0]

	cc, err := newCommandContext(cmd, root, dirsFlags.environments)
	if err != nil {
		return err
	}

	dirs, err := cc.scanner.ScanDirectories(root, cc.codes)
	if err != nil {
		reportConfigurationError(cc.logger, err)
		return err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, d := range dirs {
		fmt.Fprintln(out, displayPath(absRoot, d, dirsFlags.relative))
	}
	return nil
}
