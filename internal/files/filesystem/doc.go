// Package filesystem enumerates migration script trees.
//
// It is the collaborator that feeds the environment filter: it walks a
// directory and returns absolute paths, and never reads file content.
//
// Key interfaces:
//   - FileSystemProvider: listing, lookup and directory creation
//   - Directory: Represents a directory that can be traversed
//   - File: Represents a discovered entry with its metadata
//
// Implementations:
//   - OSFileSystem: Production implementation using OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Search patterns are shell-style globs (github.com/gobwas/glob) matched
// against the entry's base name.
package filesystem
