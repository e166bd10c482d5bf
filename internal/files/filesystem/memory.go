package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory entries
type memoryFile struct {
	absPath string
	relPath string
	info    fs.FileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.getEntriesUnder(d.absPath)

	// Sort segment by segment so the order matches filepath.Walk
	sort.Slice(entries, func(i, j int) bool {
		return walkKey(entries[i].absPath) < walkKey(entries[j].absPath)
	})

	var skipped []string
	for _, entry := range entries {
		if underAny(entry.absPath, skipped) {
			continue
		}

		rel := "."
		if entry.absPath != d.absPath {
			rel = strings.TrimPrefix(strings.TrimPrefix(entry.absPath, d.absPath), "/")
		}
		view := &memoryFile{absPath: entry.absPath, relPath: rel, info: entry.info}

		// Recover from panics in callback to prevent crashing the entire walk
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			callbackErr = fn(view, nil)
		}()

		if errors.Is(callbackErr, fs.SkipDir) && entry.info.IsDir() {
			skipped = append(skipped, entry.absPath)
			continue
		}
		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

func walkKey(p string) string {
	return strings.ReplaceAll(p, "/", "\x00")
}

func underAny(p string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(p, strings.TrimSuffix(dir, "/")+"/") {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths always use forward slashes regardless of the host platform.
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> entry
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newMemoryDir(root)

	return mfs
}

func newMemoryDir(absPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// AddFile adds a file to the in-memory filesystem. Relative paths are
// resolved against the root; missing parent directories are created.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: modTime,
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDirectory adds an empty directory and its missing parents.
func (mfs *MemoryFileSystem) AddDirectory(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = newMemoryDir(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// resolve maps a caller path to an absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == filePath {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = newMemoryDir(dir)
	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile
	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}
		if matched {
			entries = append(entries, file)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s: %w", openPath, fs.ErrNotExist)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return file.info, nil
}

func (mfs *MemoryFileSystem) Exists(dirPath string) bool {
	file, exists := mfs.files[mfs.resolve(dirPath)]
	return exists && file.info.IsDir()
}

func (mfs *MemoryFileSystem) Directories(dirPath, pattern string) ([]string, error) {
	return mfs.list(dirPath, listOptions{pattern: pattern, directories: true})
}

func (mfs *MemoryFileSystem) AllDirectories(dirPath, pattern string) ([]string, error) {
	return mfs.list(dirPath, listOptions{pattern: pattern, directories: true, recursive: true})
}

func (mfs *MemoryFileSystem) Files(dirPath, pattern string) ([]string, error) {
	return mfs.list(dirPath, listOptions{pattern: pattern})
}

func (mfs *MemoryFileSystem) AllFiles(dirPath, pattern string) ([]string, error) {
	return mfs.list(dirPath, listOptions{pattern: pattern, recursive: true})
}

func (mfs *MemoryFileSystem) FindFileCaseInsensitive(dirPath, name string) (string, error) {
	dir, err := mfs.Open(dirPath)
	if err != nil {
		return "", err
	}
	return findCaseInsensitive(dir, name)
}

func (mfs *MemoryFileSystem) CreateDirectory(dirPath string) error {
	absPath := mfs.resolve(dirPath)
	if file, exists := mfs.files[absPath]; exists && !file.info.IsDir() {
		return fmt.Errorf("failed to create directory %s: a file exists at that path", dirPath)
	}
	mfs.AddDirectory(absPath)
	return nil
}

func (mfs *MemoryFileSystem) list(dirPath string, opts listOptions) ([]string, error) {
	dir, err := mfs.Open(dirPath)
	if err != nil {
		return nil, err
	}
	return listEntries(dir, opts)
}

// Verify MemoryFileSystem implements the interface at compile time
var _ FileSystemProvider = (*MemoryFileSystem)(nil)
