package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/vvka-141/scriptenv/pkg/scriptenv"
)

// Source names where the effective environment codes came from.
type Source string

const (
	SourceNone    Source = "none"
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceProject Source = "project"
)

// ParseEnvironmentCodes splits comma-separated values, trims whitespace and
// drops empty entries. Order is preserved; it matters for compound
// directory names.
func ParseEnvironmentCodes(values ...string) []string {
	var codes []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			codes = append(codes, strings.TrimPrefix(part, scriptenv.MarkerPrefix))
		}
	}
	return codes
}

// ResolveEnvironmentCodes picks the effective codes.
// Precedence: --environment flag > SCRIPTENV_ENVIRONMENT > scriptenv.yaml.
// projectCfg may be nil.
func ResolveEnvironmentCodes(flagValues []string, projectCfg *ProjectConfig) ([]string, Source, error) {
	codes, source := ParseEnvironmentCodes(flagValues...), SourceFlag
	if len(codes) == 0 {
		codes, source = ParseEnvironmentCodes(os.Getenv(scriptenv.EnvironmentVariable)), SourceEnv
	}
	if len(codes) == 0 && projectCfg != nil {
		codes, source = ParseEnvironmentCodes(projectCfg.Environments...), SourceProject
	}
	if len(codes) == 0 {
		return nil, SourceNone, nil
	}

	if len(codes) > scriptenv.MaxEnvironmentCodes {
		return nil, source, fmt.Errorf("%w: %d environment codes given, at most %d are supported",
			scriptenv.ErrInvalidConfig, len(codes), scriptenv.MaxEnvironmentCodes)
	}
	return codes, source, nil
}
