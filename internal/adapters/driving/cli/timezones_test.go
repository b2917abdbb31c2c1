package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezonesCmd_Use(t *testing.T) {
	assert.Equal(t, "timezones [region]", timezonesCmd.Use)
	assert.Contains(t, timezonesCmd.Aliases, "tz")
}

func TestTimezonesCmd_ListsRegions(t *testing.T) {
	_, buf := setupCLI(t, nil)

	err := runCLI([]string{"timezones"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Australia\n")
	assert.Contains(t, buf.String(), "Europe\n")
	assert.NotContains(t, buf.String(), "Australia/Melbourne")
}

func TestTimezonesCmd_ListsRegion(t *testing.T) {
	_, buf := setupCLI(t, nil)

	err := runCLI([]string{"tz", "australia"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Australia/Melbourne\n")
	assert.Contains(t, buf.String(), "Australia/Sydney\n")
	assert.NotContains(t, buf.String(), "Europe/")
}

func TestTimezonesCmd_UnknownRegion(t *testing.T) {
	setupCLI(t, nil)

	err := runCLI([]string{"timezones", "Atlantis"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `no timezones found under "Atlantis"`)
}

func TestTimezonesCmd_NoService(t *testing.T) {
	setupCLI(t, nil)
	SetServices(&Services{})

	err := runCLI([]string{"timezones"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timezone service not configured")
}
