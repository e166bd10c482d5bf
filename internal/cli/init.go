package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vvka-141/scriptenv/internal/config"
	"github.com/vvka-141/scriptenv/internal/files/filesystem"
	"github.com/vvka-141/scriptenv/internal/logging"
)

var initCmd = &cobra.Command{
	Use:   "init <root>",
	Short: "Create a scripts root with a default scriptenv.yaml",
	Long: `Init creates <root> (and missing parents) and writes a default
scriptenv.yaml unless one already exists.

Examples:
  scriptenv init ./migrations
  scriptenv init ./migrations -e dev`,
	Args:              RequireRoot,
	ValidArgsFunction: completeRoot,
	RunE:              runInit,
}

var initEnvironments []string

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringArrayVarP(&initEnvironments, "environment", "e", nil,
		"Default environment code to record in scriptenv.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	root := args[0]
	logger := logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	fsProvider := filesystem.NewOSFileSystem()

	if err := fsProvider.CreateDirectory(root); err != nil {
		return err
	}

	existing, err := fsProvider.FindFileCaseInsensitive(root, config.ConfigFileName)
	if err == nil {
		logger.Info("%s already exists, leaving it unchanged", existing)
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := config.Default()
	cfg.Environments = config.ParseEnvironmentCodes(initEnvironments...)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(root, cfg); err != nil {
		return err
	}

	logger.Info("Initialized %s", filepath.Join(root, config.ConfigFileName))
	fmt.Fprintln(cmd.OutOrStdout(), root)
	return nil
}
