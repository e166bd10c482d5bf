package scriptenv

// Decision records how the filter judged a single path.
type Decision struct {
	// Path is the path as it was supplied to the filter.
	Path string

	// Marker is the first qualifying environment marker found between the path
	// and the working root, lower-cased. Empty when the path is environment-neutral.
	Marker string

	// Kept reports whether the path survives filtering.
	Kept bool
}

// ScanResult contains the results of scanning a working root.
type ScanResult struct {
	// Root is the absolute working root that was scanned.
	Root string

	// Discovered holds every script path found before environment filtering.
	Discovered []string

	// Files holds the script paths that apply to the requested environments,
	// in discovery order.
	Files []string
}

// Excluded returns discovered paths that were filtered out, in discovery order.
func (r ScanResult) Excluded() []string {
	kept := make(map[string]struct{}, len(r.Files))
	for _, f := range r.Files {
		kept[f] = struct{}{}
	}

	var excluded []string
	for _, f := range r.Discovered {
		if _, ok := kept[f]; !ok {
			excluded = append(excluded, f)
		}
	}
	return excluded
}
