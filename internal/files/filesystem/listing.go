package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// listOptions selects what listEntries collects from a walk.
type listOptions struct {
	pattern     string
	directories bool
	recursive   bool
}

// compilePattern turns a search pattern into a base-name matcher.
func compilePattern(pattern string) (glob.Glob, error) {
	if pattern == "" {
		pattern = "*"
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", pattern, err)
	}
	return g, nil
}

// listEntries walks dir and collects matching paths. The walked directory
// itself is never included.
func listEntries(dir Directory, opts listOptions) ([]string, error) {
	matcher, err := compilePattern(opts.pattern)
	if err != nil {
		return nil, err
	}

	var result []string
	err = dir.Walk(func(file File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		rel := filepath.ToSlash(file.RelativePath())
		if rel == "." || rel == "" {
			return nil
		}

		nested := strings.Contains(rel, "/")
		if nested && !opts.recursive {
			return nil
		}

		isDir := file.Info().IsDir()
		if isDir == opts.directories && matcher.Match(file.Info().Name()) {
			result = append(result, file.Path())
		}

		if isDir && !opts.recursive {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// findCaseInsensitive returns the first shallow file of dir named name, ignoring case.
func findCaseInsensitive(dir Directory, name string) (string, error) {
	files, err := listEntries(dir, listOptions{})
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if strings.EqualFold(filepath.Base(f), name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", fs.ErrNotExist, name, dir.Path())
}
