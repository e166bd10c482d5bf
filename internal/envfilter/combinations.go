package envfilter

import "strings"

// GenerateTokens returns every directory name accepted for codes: each
// non-empty subset of the prefixed codes, concatenated in request order and
// lower-cased. For n codes the set holds at most 2^n - 1 tokens (fewer when
// codes repeat), so n must stay small; scriptenv.MaxEnvironmentCodes is the
// ceiling enforced by configuration.
func GenerateTokens(codes []string) map[string]struct{} {
	prefixed := make([]string, len(codes))
	for i, code := range codes {
		prefixed[i] = markerPrefix + code
	}

	tokens := make(map[string]struct{}, (1<<len(prefixed))-1)
	for _, subset := range combinations(prefixed) {
		if len(subset) == 0 {
			continue
		}
		tokens[strings.ToLower(strings.Join(subset, ""))] = struct{}{}
	}
	return tokens
}

// combinations enumerates all 2^n subsets of items, including the empty one.
// Bit i of the subset index selects items[i], which keeps each subset in the
// original relative order.
func combinations(items []string) [][]string {
	total := 1 << len(items)
	result := make([][]string, 0, total)
	for mask := 0; mask < total; mask++ {
		var subset []string
		for i, item := range items {
			if mask&(1<<i) != 0 {
				subset = append(subset, item)
			}
		}
		result = append(result, subset)
	}
	return result
}
