package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/vvka-141/scriptenv/internal/envfilter"
	"github.com/vvka-141/scriptenv/internal/tui"
	"github.com/vvka-141/scriptenv/pkg/scriptenv"
)

var filterCmd = &cobra.Command{
	Use:   "filter <root>",
	Short: "List the scripts that apply to an environment",
	Long: `Filter enumerates script files under <root> and prints, one per line, the
ones that apply to the requested environment codes.

A script is kept when the nearest environment directory between it and
<root> matches the request, or when there is none. Without any code the
command fails if <root> contains environment directories.

Environment codes are taken from, in order:
  1. --environment flags (repeatable or comma-separated)
  2. $SCRIPTENV_ENVIRONMENT (also read from .env)
  3. environments in <root>/scriptenv.yaml

Examples:
  # Scripts for dev
  scriptenv filter ./migrations -e dev

  # Scripts for dev and qa, including _dev_qa directories
  scriptenv filter ./migrations -e dev,qa

  # Show why each script was kept or skipped
  scriptenv filter ./migrations -e prod --explain`,
	Args:              RequireRoot,
	ValidArgsFunction: completeRoot,
	RunE:              runFilter,
}

type filterFlagValues struct {
	environments []string
	explain      bool
	relative     bool
}

var filterFlags filterFlagValues

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringArrayVarP(&filterFlags.environments, "environment", "e", nil,
		"Environment code (repeatable, or comma-separated)")
	filterCmd.Flags().BoolVar(&filterFlags.explain, "explain", false,
		"Print every discovered script with its environment marker and decision")
	filterCmd.Flags().BoolVar(&filterFlags.relative, "relative", false,
		"Print paths relative to <root>")
	_ = filterCmd.RegisterFlagCompletionFunc("environment", completeEnvironmentCodes)
}

func runFilter(cmd *cobra.Command, args []string) error {
	root := args[0]

	cc, err := newCommandContext(cmd, root, filterFlags.environments)
	if err != nil {
		return err
	}

	if filterFlags.explain {
		return runExplain(cmd, cc, root)
	}

	result, err := cc.scanner.ScanDirectory(root, cc.codes)
	if err != nil {
		reportConfigurationError(cc.logger, err)
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range result.Files {
		fmt.Fprintln(out, displayPath(result.Root, f, filterFlags.relative))
	}
	cc.logger.Verbose("%d of %d script(s) apply", len(result.Files), len(result.Discovered))
	return nil
}

func runExplain(cmd *cobra.Command, cc *commandContext, root string) error {
	absRoot, files, err := cc.scanner.Discover(root)
	if err != nil {
		return err
	}

	decisions, err := envfilter.Explain(absRoot, cc.codes, files)
	if err != nil {
		reportConfigurationError(cc.logger, err)
		return fmt.Errorf("failed to filter scripts: %w", err)
	}

	styler := tui.NewStyler(tui.DetectMode())
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styler.Title(fmt.Sprintf("%s (environment: %s)", absRoot, strings.Join(cc.codes, ","))))
	fmt.Fprint(out, renderDecisions(decisions, absRoot, filterFlags.relative, styler))
	return nil
}

func renderDecisions(decisions []scriptenv.Decision, absRoot string, relative bool, styler tui.Styler) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Decision", "Marker", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	kept := 0
	for _, d := range decisions {
		status := styler.Excluded("skip")
		if d.Kept {
			status = styler.Kept("keep")
			kept++
		}
		marker := "-"
		if d.Marker != "" {
			marker = styler.Marker(d.Marker)
		}
		table.Append([]string{status, marker, displayPath(absRoot, d.Path, relative)})
	}

	table.SetFooter([]string{fmt.Sprintf("%d kept", kept), "", fmt.Sprintf("%d discovered", len(decisions))})
	table.Render()

	return buf.String()
}

// displayPath renders p relative to absRoot when requested.
func displayPath(absRoot, p string, relative bool) string {
	if !relative {
		return p
	}
	rel, err := filepath.Rel(absRoot, p)
	if err != nil {
		return p
	}
	return rel
}
