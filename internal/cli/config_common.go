package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vvka-141/scriptenv/internal/config"
	"github.com/vvka-141/scriptenv/internal/files/scanner"
	"github.com/vvka-141/scriptenv/internal/logging"
	"github.com/vvka-141/scriptenv/pkg/scriptenv"
)

// loadProjectConfig loads .env and the project configuration.
// Returns nil config if scriptenv.yaml does not exist (not an error).
func loadProjectConfig(root string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(root)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// commandContext bundles what every filtering command needs.
type commandContext struct {
	logger  scriptenv.Logger
	scanner *scanner.Scanner
	codes   []string
}

// newCommandContext resolves configuration and environment codes for root.
func newCommandContext(cmd *cobra.Command, root string, environmentFlags []string) (*commandContext, error) {
	logger := logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	projectCfg, err := loadProjectConfig(root)
	if err != nil {
		return nil, err
	}

	codes, source, err := config.ResolveEnvironmentCodes(environmentFlags, projectCfg)
	if err != nil {
		return nil, err
	}
	if len(codes) > 0 {
		logger.Verbose("Environment: %s (from %s)", strings.Join(codes, ","), source)
	} else {
		logger.Verbose("Environment: none")
	}

	opts := scanner.Options{}
	if projectCfg != nil {
		opts.Patterns = projectCfg.Patterns
		opts.ExcludeDirectories = projectCfg.ExcludeDirectories
	}

	return &commandContext{
		logger:  logger,
		scanner: scanner.NewScanner(logger, opts),
		codes:   codes,
	}, nil
}

// reportConfigurationError adds a hint naming the markers that need a code.
func reportConfigurationError(logger scriptenv.Logger, err error) {
	var cfgErr *scriptenv.ConfigurationError
	if !errors.As(err, &cfgErr) || len(cfgErr.Markers) == 0 {
		return
	}
	codes := make([]string, len(cfgErr.Markers))
	for i, m := range cfgErr.Markers {
		codes[i] = strings.TrimPrefix(m, scriptenv.MarkerPrefix)
	}
	logger.Error("Environment directories found: %s. Pass --environment (e.g. -e %s) or set %s.",
		strings.Join(cfgErr.Markers, ", "), codes[0], scriptenv.EnvironmentVariable)
}
