package envfilter

import (
	"strings"

	"github.com/vvka-141/scriptenv/pkg/scriptenv"
)

// Filter returns the files that apply to the requested environment codes,
// preserving their order.
//
// With no codes, files are returned as-is when no environment-aware directory
// exists under workingRoot, and a *scriptenv.ConfigurationError is returned
// when one does. With codes, a file is kept when the first marker between it
// and workingRoot is one of GenerateTokens(codes), or when it has no marker.
func Filter(workingRoot string, codes []string, files []string) ([]string, error) {
	decisions, err := Explain(workingRoot, codes, files)
	if err != nil {
		return nil, err
	}
	return keptPaths(decisions), nil
}

// Explain judges every file like Filter does and reports the marker that
// decided each one. The error contract is identical to Filter.
func Explain(workingRoot string, codes []string, files []string) ([]scriptenv.Decision, error) {
	return judge(workingRoot, codes, files, RelativeExtraSegments)
}

// FilterDirectories applies the file rules to directory paths. A directory's
// own name is its leaf segment, so "/migrations/v1.0/_dev" carries the "_dev"
// marker. Only the given paths are judged; nothing is expanded recursively.
func FilterDirectories(workingRoot string, codes []string, directories []string) ([]string, error) {
	decisions, err := judge(workingRoot, codes, directories, extraSegments)
	if err != nil {
		return nil, err
	}
	return keptPaths(decisions), nil
}

// Markers lists the distinct environment markers that govern files, lower-cased,
// in order of first appearance.
func Markers(workingRoot string, files []string) []string {
	decisions := make([]scriptenv.Decision, len(files))
	for i, f := range files {
		decisions[i] = scriptenv.Decision{
			Path:   f,
			Marker: strings.ToLower(firstMarker(RelativeExtraSegments(workingRoot, f))),
		}
	}
	return distinctMarkers(decisions)
}

func judge(workingRoot string, codes []string, paths []string, segmentsOf func(string, string) []string) ([]scriptenv.Decision, error) {
	decisions := make([]scriptenv.Decision, len(paths))
	hasEnvironmentAwareDirectories := false
	for i, p := range paths {
		marker := strings.ToLower(firstMarker(segmentsOf(workingRoot, p)))
		if marker != "" {
			hasEnvironmentAwareDirectories = true
		}
		decisions[i] = scriptenv.Decision{Path: p, Marker: marker}
	}

	if len(codes) == 0 {
		if hasEnvironmentAwareDirectories {
			return nil, &scriptenv.ConfigurationError{Markers: distinctMarkers(decisions)}
		}
		for i := range decisions {
			decisions[i].Kept = true
		}
		return decisions, nil
	}

	allowed := GenerateTokens(codes)
	for i := range decisions {
		if decisions[i].Marker == "" {
			decisions[i].Kept = true
			continue
		}
		_, decisions[i].Kept = allowed[decisions[i].Marker]
	}
	return decisions, nil
}

// firstMarker returns the first segment, leaf-first, that marks an
// environment. Deeper markers are ignored.
func firstMarker(segs []string) string {
	for _, seg := range segs {
		if isMarker(seg) {
			return seg
		}
	}
	return ""
}

func distinctMarkers(decisions []scriptenv.Decision) []string {
	var markers []string
	seen := make(map[string]struct{})
	for _, d := range decisions {
		if d.Marker == "" {
			continue
		}
		if _, ok := seen[d.Marker]; ok {
			continue
		}
		seen[d.Marker] = struct{}{}
		markers = append(markers, d.Marker)
	}
	return markers
}

func keptPaths(decisions []scriptenv.Decision) []string {
	kept := make([]string, 0, len(decisions))
	for _, d := range decisions {
		if d.Kept {
			kept = append(kept, d.Path)
		}
	}
	return kept
}

// EnvironmentFilter adapts the package functions to scriptenv.ScriptFilter.
type EnvironmentFilter struct{}

// NewEnvironmentFilter creates a stateless filter.
func NewEnvironmentFilter() *EnvironmentFilter {
	return &EnvironmentFilter{}
}

func (EnvironmentFilter) FilterFiles(workingRoot string, codes []string, files []string) ([]string, error) {
	return Filter(workingRoot, codes, files)
}

func (EnvironmentFilter) FilterDirectories(workingRoot string, codes []string, directories []string) ([]string, error) {
	return FilterDirectories(workingRoot, codes, directories)
}

// Verify EnvironmentFilter implements the interface at compile time
var _ scriptenv.ScriptFilter = (*EnvironmentFilter)(nil)
