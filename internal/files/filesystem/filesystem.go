package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// File represents an individual file or directory discovered during a walk.
// Content is never read: callers decide by path alone.
type File interface {
	// Path returns the absolute path to the entry
	Path() string

	// RelativePath returns the path relative to the walked root
	RelativePath() string

	// Info returns entry metadata
	Info() FileInfo
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree in lexical order, calling fn for the
	// directory itself and every file and directory below it.
	// Returning fs.SkipDir from fn for a directory skips its contents.
	// Any other error stops the walk and is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider enumerates script trees. Listing operations return
// absolute paths in lexical order and match pattern against base names
// using shell-style globs ("*.sql", "v1.?", "{up,down}.sql"). An empty
// pattern matches everything.
type FileSystemProvider interface {
	// Open opens a directory at the specified path.
	// Returns an error wrapping fs.ErrNotExist when the directory is missing.
	Open(path string) (Directory, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// Exists reports whether path exists and is a directory.
	Exists(path string) bool

	// Directories lists the immediate subdirectories of path.
	Directories(path, pattern string) ([]string, error)

	// AllDirectories lists every subdirectory below path, recursively.
	AllDirectories(path, pattern string) ([]string, error)

	// Files lists the files directly inside path.
	Files(path, pattern string) ([]string, error)

	// AllFiles lists every file below path, recursively.
	AllFiles(path, pattern string) ([]string, error)

	// FindFileCaseInsensitive returns the file directly inside path whose name
	// equals name ignoring case. Returns an error wrapping fs.ErrNotExist
	// when there is none.
	FindFileCaseInsensitive(path, name string) (string, error)

	// CreateDirectory creates path and any missing parents.
	CreateDirectory(path string) error
}
