package envfilter

import (
	"path/filepath"
	"strings"
)

// Segments splits path into directory names ordered from the leaf up to the
// filesystem root. The root itself is the last element ("/" on Unix, the
// volume root on Windows). The filesystem is never consulted.
func Segments(path string) []string {
	current := filepath.Clean(path)
	var segs []string
	for {
		parent := filepath.Dir(current)
		if parent == current {
			return append(segs, current)
		}
		segs = append(segs, filepath.Base(current))
		current = parent
	}
}

// RelativeExtraSegments returns the directory names strictly between
// filePath and workingRoot, leaf-first. Transaction wrapper directories are
// removed before the shared ancestor chain is dropped.
func RelativeExtraSegments(workingRoot, filePath string) []string {
	return extraSegments(workingRoot, filepath.Dir(filePath))
}

// extraSegments is RelativeExtraSegments for a directory already known to be
// the innermost one of interest.
func extraSegments(workingRoot, dir string) []string {
	rootSegs := Segments(workingRoot)

	var segs []string
	for _, seg := range Segments(dir) {
		if isTransaction(seg) {
			continue
		}
		segs = append(segs, seg)
	}

	if len(rootSegs) > len(segs) {
		return nil
	}
	return segs[:len(segs)-len(rootSegs)]
}

// hasMarkerPrefix reports whether name starts with the environment marker.
func hasMarkerPrefix(name string) bool {
	return strings.HasPrefix(name, markerPrefix)
}
