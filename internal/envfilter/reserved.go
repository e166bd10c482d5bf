package envfilter

import (
	"strings"

	"github.com/vvka-141/scriptenv/pkg/scriptenv"
)

const markerPrefix = scriptenv.MarkerPrefix

var reservedNames = map[string]struct{}{
	scriptenv.ReservedInit:        {},
	scriptenv.ReservedPre:         {},
	scriptenv.ReservedDraft:       {},
	scriptenv.ReservedPost:        {},
	scriptenv.ReservedErase:       {},
	scriptenv.ReservedDrop:        {},
	scriptenv.ReservedTransaction: {},
}

// IsReserved reports whether name is a pipeline-stage directory. The match is
// case-insensitive and accepts the name with or without a single leading
// marker, so "draft", "DRAFT" and "_draft" are all reserved.
func IsReserved(name string) bool {
	_, ok := reservedNames[canonicalReserved(name)]
	return ok
}

// ReservedNames returns the reserved directory names in upper case.
func ReservedNames() []string {
	return []string{
		scriptenv.ReservedInit,
		scriptenv.ReservedPre,
		scriptenv.ReservedDraft,
		scriptenv.ReservedPost,
		scriptenv.ReservedErase,
		scriptenv.ReservedDrop,
		scriptenv.ReservedTransaction,
	}
}

func isTransaction(name string) bool {
	return canonicalReserved(name) == scriptenv.ReservedTransaction
}

func canonicalReserved(name string) string {
	return strings.ToUpper(strings.TrimPrefix(name, markerPrefix))
}

// isMarker reports whether a directory name marks environment-specific content.
func isMarker(name string) bool {
	return hasMarkerPrefix(name) && !IsReserved(name)
}
