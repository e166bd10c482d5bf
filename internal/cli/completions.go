package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vvka-141/scriptenv/internal/envfilter"
	"github.com/vvka-141/scriptenv/internal/files/scanner"
	"github.com/vvka-141/scriptenv/internal/logging"
	"github.com/vvka-141/scriptenv/pkg/scriptenv"
)

// completeRoot completes the <root> argument with directories only.
func completeRoot(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeEnvironmentCodes suggests the codes of the environment markers
// found under the <root> argument.
func completeEnvironmentCodes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s := scanner.NewScanner(logging.NewNullLogger(), scanner.Options{})
	absRoot, files, err := s.Discover(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, marker := range envfilter.Markers(absRoot, files) {
		code := strings.TrimPrefix(marker, scriptenv.MarkerPrefix)
		if strings.HasPrefix(code, strings.ToLower(toComplete)) {
			matches = append(matches, code)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
