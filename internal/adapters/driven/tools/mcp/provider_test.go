package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerConfigs(t *testing.T) {
	t.Run("splits command and args", func(t *testing.T) {
		configs, err := ParseServerConfigs([]string{"npx -y my-server --flag"})
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, "npx", configs[0].Command)
		assert.Equal(t, []string{"-y", "my-server", "--flag"}, configs[0].Args)
	})

	t.Run("bare command has no args", func(t *testing.T) {
		configs, err := ParseServerConfigs([]string{"my-server"})
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, "my-server", configs[0].Command)
		assert.Empty(t, configs[0].Args)
	})

	t.Run("skips blank entries", func(t *testing.T) {
		configs, err := ParseServerConfigs([]string{"  ", "a", ""})
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, "a", configs[0].Command)
	})

	t.Run("all blank is an error", func(t *testing.T) {
		_, err := ParseServerConfigs([]string{"", "   "})
		assert.Error(t, err)
	})
}
