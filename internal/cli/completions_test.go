package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompleteRoot(t *testing.T) {
	_, directive := completeRoot(filterCmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveFilterDirs, directive)

	_, directive = completeRoot(filterCmd, []string{"./migrations"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}

func TestCompleteEnvironmentCodes(t *testing.T) {
	root := writeScripts(t, "v1/_dev/a.sql", "v1/_Test/b.sql", "v2/_dev_qa/c.sql", "v2/_post/d.sql")

	codes, directive := completeEnvironmentCodes(filterCmd, []string{root}, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, []string{"test", "dev", "dev_qa"}, codes)

	codes, _ = completeEnvironmentCodes(filterCmd, []string{root}, "De")
	assert.Equal(t, []string{"dev", "dev_qa"}, codes)
}

func TestCompleteEnvironmentCodes_NoRoot(t *testing.T) {
	codes, directive := completeEnvironmentCodes(filterCmd, nil, "")
	assert.Nil(t, codes)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	codes, _ = completeEnvironmentCodes(filterCmd, []string{"/definitely/missing/root"}, "")
	assert.Nil(t, codes)
}
