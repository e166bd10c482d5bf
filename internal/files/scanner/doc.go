// Package scanner discovers migration scripts and applies environment filtering.
//
// The scanner package is responsible for:
//   - Recursively enumerating script files that match the configured patterns
//   - Skipping excluded directories
//   - Filtering the result for the requested environment codes
//   - Filtering directory listings with the same rules
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
