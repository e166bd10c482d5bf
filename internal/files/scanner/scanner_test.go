package scanner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/scriptenv/internal/files/filesystem"
	"github.com/vvka-141/scriptenv/internal/logging"
	"github.com/vvka-141/scriptenv/pkg/scriptenv"
)

func newTestScanner(opts Options) (*Scanner, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/migrations")
	return NewScannerWithFS(fs, logging.NewNullLogger(), opts), fs
}

func addScenarioFiles(fs *filesystem.MemoryFileSystem) {
	fs.AddFile("v1.0/_dev/a.sql", "SELECT 1;")
	fs.AddFile("v1.0/_test/b.sql", "SELECT 2;")
	fs.AddFile("v1.0/c.sql", "SELECT 3;")
	fs.AddFile("v1.0/notes.md", "not a script")
}

func TestNewScannerWithFS_NilArgs(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/")

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil filesystem", func() { NewScannerWithFS(nil, logging.NewNullLogger(), Options{}) }},
		{"nil logger", func() { NewScannerWithFS(fs, nil, Options{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
}

func TestNewScanner_DefaultPattern(t *testing.T) {
	s := NewScanner(logging.NewNullLogger(), Options{})
	assert.Equal(t, []string{scriptenv.DefaultScriptPattern}, s.opts.Patterns)
}

func TestScanDirectory_FiltersForEnvironment(t *testing.T) {
	s, fs := newTestScanner(Options{})
	addScenarioFiles(fs)

	result, err := s.ScanDirectory("/migrations", []string{"dev"})

	require.NoError(t, err)
	assert.Equal(t, "/migrations", result.Root)
	assert.Equal(t, []string{
		"/migrations/v1.0/_dev/a.sql",
		"/migrations/v1.0/_test/b.sql",
		"/migrations/v1.0/c.sql",
	}, result.Discovered)
	assert.Equal(t, []string{"/migrations/v1.0/_dev/a.sql", "/migrations/v1.0/c.sql"}, result.Files)
	assert.Equal(t, []string{"/migrations/v1.0/_test/b.sql"}, result.Excluded())
}

func TestScanDirectory_MissingEnvironment(t *testing.T) {
	s, fs := newTestScanner(Options{})
	addScenarioFiles(fs)

	result, err := s.ScanDirectory("/migrations", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, scriptenv.ErrEnvironmentRequired)
	assert.Empty(t, result.Files)

	var cfgErr *scriptenv.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestScanDirectory_NoEnvironmentDirectories(t *testing.T) {
	s, fs := newTestScanner(Options{})
	fs.AddFile("v1.0/a.sql", "SELECT 1;")
	fs.AddFile("v1.0/_draft/b.sql", "SELECT 2;")
	fs.AddFile("v1.1/_transaction/c.sql", "SELECT 3;")

	result, err := s.ScanDirectory("/migrations", nil)

	require.NoError(t, err)
	assert.Equal(t, result.Discovered, result.Files)
	assert.Len(t, result.Files, 3)
}

func TestScanDirectory_RelativeRoot(t *testing.T) {
	s, fs := newTestScanner(Options{})
	addScenarioFiles(fs)

	result, err := s.ScanDirectory(".", []string{"test"})

	require.NoError(t, err)
	assert.Equal(t, []string{"/migrations/v1.0/_test/b.sql", "/migrations/v1.0/c.sql"}, result.Files)
}

func TestScanDirectory_NonexistentPath(t *testing.T) {
	s, _ := newTestScanner(Options{})

	_, err := s.ScanDirectory("/nonexistent", []string{"dev"})

	assert.ErrorIs(t, err, scriptenv.ErrRootNotFound)
	assert.Equal(t, scriptenv.ExitRootNotFound, scriptenv.ExitCodeForError(err))
}

func TestScanDirectory_EmptyDirectory(t *testing.T) {
	s, _ := newTestScanner(Options{})

	result, err := s.ScanDirectory("/migrations", nil)

	require.NoError(t, err)
	assert.Empty(t, result.Discovered)
	assert.Empty(t, result.Files)
}

func TestScanDirectory_MultiplePatterns(t *testing.T) {
	s, fs := newTestScanner(Options{Patterns: []string{"*.sql", "*.psql", "*.sql"}})
	fs.AddFile("v1.0/b.psql", "SELECT 1;")
	fs.AddFile("v1.0/a.sql", "SELECT 2;")
	fs.AddFile("v0.9/z.psql", "SELECT 3;")

	result, err := s.ScanDirectory("/migrations", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"/migrations/v0.9/z.psql",
		"/migrations/v1.0/a.sql",
		"/migrations/v1.0/b.psql",
	}, result.Files)
}

func TestScanDirectory_ExcludeDirectories(t *testing.T) {
	s, fs := newTestScanner(Options{ExcludeDirectories: []string{".git", "Archive"}})
	addScenarioFiles(fs)
	fs.AddFile("archive/_prod/old.sql", "SELECT 0;")
	fs.AddFile(".git/hooks/x.sql", "SELECT 0;")

	result, err := s.ScanDirectory("/migrations", []string{"dev"})

	require.NoError(t, err)
	assert.NotContains(t, result.Discovered, "/migrations/archive/_prod/old.sql")
	assert.NotContains(t, result.Discovered, "/migrations/.git/hooks/x.sql")
	assert.Len(t, result.Discovered, 3)
}

func TestScanDirectories(t *testing.T) {
	s, fs := newTestScanner(Options{})
	addScenarioFiles(fs)
	fs.AddDirectory("v1.0/_dev_test")

	dirs, err := s.ScanDirectories("/migrations", []string{"dev"})

	require.NoError(t, err)
	assert.Equal(t, []string{"/migrations/v1.0", "/migrations/v1.0/_dev"}, dirs)
}

func TestScanDirectories_MissingEnvironment(t *testing.T) {
	s, fs := newTestScanner(Options{})
	addScenarioFiles(fs)

	_, err := s.ScanDirectories("/migrations", nil)

	assert.ErrorIs(t, err, scriptenv.ErrEnvironmentRequired)
}

func TestDiscover(t *testing.T) {
	s, fs := newTestScanner(Options{})
	addScenarioFiles(fs)

	root, files, err := s.Discover("/migrations")

	require.NoError(t, err)
	assert.Equal(t, "/migrations", root)
	assert.Len(t, files, 3)
}
