package envfilter

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenList(tokens map[string]struct{}) []string {
	list := make([]string, 0, len(tokens))
	for tok := range tokens {
		list = append(list, tok)
	}
	sort.Strings(list)
	return list
}

func TestGenerateTokens_Empty(t *testing.T) {
	assert.Empty(t, GenerateTokens(nil))
	assert.Empty(t, GenerateTokens([]string{}))
}

func TestGenerateTokens_Single(t *testing.T) {
	assert.Equal(t, []string{"_dev"}, tokenList(GenerateTokens([]string{"dev"})))
}

func TestGenerateTokens_OrderSensitive(t *testing.T) {
	tokens := GenerateTokens([]string{"dev", "qa"})

	assert.Equal(t, []string{"_dev", "_dev_qa", "_qa"}, tokenList(tokens))
	assert.NotContains(t, tokens, "_qa_dev")
}

func TestGenerateTokens_LowerCased(t *testing.T) {
	tokens := GenerateTokens([]string{"DEV", "Qa"})

	assert.Contains(t, tokens, "_dev")
	assert.Contains(t, tokens, "_qa")
	assert.Contains(t, tokens, "_dev_qa")
}

func TestGenerateTokens_ThreeCodes(t *testing.T) {
	tokens := GenerateTokens([]string{"a", "b", "c"})

	assert.Equal(t, []string{"_a", "_a_b", "_a_b_c", "_a_c", "_b", "_b_c", "_c"}, tokenList(tokens))
}

func TestGenerateTokens_Count(t *testing.T) {
	for n := 1; n <= 10; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			codes := make([]string, n)
			for i := range codes {
				codes[i] = fmt.Sprintf("env%02d", i)
			}
			tokens := GenerateTokens(codes)
			require.Len(t, tokens, (1<<n)-1)
			_, hasEmpty := tokens[""]
			assert.False(t, hasEmpty)
		})
	}
}

func TestCombinations_IncludesEmptySubset(t *testing.T) {
	subsets := combinations([]string{"x", "y"})

	require.Len(t, subsets, 4)
	assert.Empty(t, subsets[0])
	assert.Equal(t, []string{"x"}, subsets[1])
	assert.Equal(t, []string{"y"}, subsets[2])
	assert.Equal(t, []string{"x", "y"}, subsets[3])
}
