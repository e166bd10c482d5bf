package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/scriptenv/internal/envfilter"
	"github.com/vvka-141/scriptenv/internal/files/filesystem"
	"github.com/vvka-141/scriptenv/pkg/scriptenv"
)

// Options controls which files the scanner enumerates.
type Options struct {
	// Patterns are base-name globs selecting script files.
	// Defaults to scriptenv.DefaultScriptPattern when empty.
	Patterns []string

	// ExcludeDirectories names directories (case-insensitive) whose contents
	// are never enumerated, wherever they appear below the root.
	ExcludeDirectories []string
}

// Scanner discovers script files under a working root and filters them for
// the requested environments.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider and logger are also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	filter     scriptenv.ScriptFilter
	logger     scriptenv.Logger
	opts       Options
}

// NewScanner creates a new scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger scriptenv.Logger, opts Options) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger, opts)
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger scriptenv.Logger, opts Options) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if len(opts.Patterns) == 0 {
		opts.Patterns = []string{scriptenv.DefaultScriptPattern}
	}
	return &Scanner{
		fsProvider: fsProvider,
		filter:     envfilter.NewEnvironmentFilter(),
		logger:     logger,
		opts:       opts,
	}
}

// ScanDirectory enumerates scripts under root and keeps those that apply to codes.
//
// Returns:
//   - scriptenv.ScanResult: discovered and filtered paths, in walk order
//   - error: scriptenv.ErrRootNotFound when root is missing, a
//     *scriptenv.ConfigurationError when environment directories exist but
//     codes is empty, or any enumeration error
func (s *Scanner) ScanDirectory(root string, codes []string) (scriptenv.ScanResult, error) {
	absRoot, err := s.openRoot(root)
	if err != nil {
		return scriptenv.ScanResult{}, err
	}

	discovered, err := s.discoverFiles(absRoot)
	if err != nil {
		return scriptenv.ScanResult{}, err
	}
	s.logger.Verbose("Discovered %d script(s) under %s", len(discovered), absRoot)

	files, err := s.filter.FilterFiles(absRoot, codes, discovered)
	if err != nil {
		return scriptenv.ScanResult{}, fmt.Errorf("failed to filter scripts: %w", err)
	}

	result := scriptenv.ScanResult{
		Root:       absRoot,
		Discovered: discovered,
		Files:      files,
	}
	for _, excluded := range result.Excluded() {
		s.logger.Verbose("Skipping %s (not for environment %v)", excluded, codes)
	}
	return result, nil
}

// ScanDirectories lists every directory under root and keeps those that
// apply to codes.
func (s *Scanner) ScanDirectories(root string, codes []string) ([]string, error) {
	absRoot, err := s.openRoot(root)
	if err != nil {
		return nil, err
	}

	dirs, err := s.fsProvider.AllDirectories(absRoot, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list directories: %w", err)
	}
	dirs = s.withoutExcluded(absRoot, dirs)
	s.logger.Verbose("Discovered %d directories under %s", len(dirs), absRoot)

	kept, err := s.filter.FilterDirectories(absRoot, codes, dirs)
	if err != nil {
		return nil, fmt.Errorf("failed to filter directories: %w", err)
	}
	return kept, nil
}

// Discover enumerates scripts under root without environment filtering.
func (s *Scanner) Discover(root string) (string, []string, error) {
	absRoot, err := s.openRoot(root)
	if err != nil {
		return "", nil, err
	}
	files, err := s.discoverFiles(absRoot)
	if err != nil {
		return "", nil, err
	}
	return absRoot, files, nil
}

func (s *Scanner) openRoot(root string) (string, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", scriptenv.ErrRootNotFound, root)
		}
		return "", fmt.Errorf("failed to open directory: %w", err)
	}
	return dir.Path(), nil
}

// discoverFiles collects files matching any configured pattern, without duplicates.
func (s *Scanner) discoverFiles(absRoot string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range s.opts.Patterns {
		matches, err := s.fsProvider.AllFiles(absRoot, pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to list files matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	if len(s.opts.Patterns) > 1 {
		sort.SliceStable(files, func(i, j int) bool {
			return walkKey(files[i]) < walkKey(files[j])
		})
	}
	return s.withoutExcluded(absRoot, files), nil
}

func (s *Scanner) withoutExcluded(absRoot string, paths []string) []string {
	if len(s.opts.ExcludeDirectories) == 0 {
		return paths
	}

	kept := paths[:0:0]
	for _, p := range paths {
		if s.isExcluded(absRoot, p) {
			s.logger.Verbose("Ignoring %s (excluded directory)", p)
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// isExcluded reports whether any path element of p below absRoot is excluded.
func (s *Scanner) isExcluded(absRoot, p string) bool {
	rel, err := filepath.Rel(absRoot, p)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		for _, excluded := range s.opts.ExcludeDirectories {
			if strings.EqualFold(part, excluded) {
				return true
			}
		}
	}
	return false
}

// walkKey orders paths segment by segment, matching directory walk order.
func walkKey(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), "/", "\x00")
}

// Verify Scanner implements the interface at compile time
var _ scriptenv.FileScanner = (*Scanner)(nil)
