package scriptenv

// ScriptFilter decides which discovered paths apply to the requested environments.
// Implementations must be pure: no filesystem access, no retained state.
type ScriptFilter interface {
	// FilterFiles returns the subset of files that apply to codes, preserving order.
	FilterFiles(workingRoot string, codes []string, files []string) ([]string, error)

	// FilterDirectories applies the same rules to directory paths.
	FilterDirectories(workingRoot string, codes []string, directories []string) ([]string, error)
}

// FileScanner defines the interface for discovering and filtering script files.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileScanner interface {
	// ScanDirectory enumerates scripts under root and filters them for codes.
	ScanDirectory(root string, codes []string) (ScanResult, error)
}
