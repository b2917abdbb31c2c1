package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/mcp"
)

func TestMCPCmd_Structure(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	assert.Equal(t, "serve", mcpServeCmd.Use)

	port := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "0", port.DefValue)
}

func TestMCPServe_RequiresProfileService(t *testing.T) {
	setupCLI(t, nil)
	SetServices(&Services{})

	err := runCLI([]string{"mcp", "serve"})

	require.Error(t, err)
	assert.ErrorIs(t, err, mcp.ErrMissingProfileService)
}
