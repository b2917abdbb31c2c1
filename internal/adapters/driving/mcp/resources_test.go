package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestExtractRegion(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid region URI",
			uri:      "natal://timezones/Australia",
			expected: "Australia",
		},
		{
			name:     "invalid prefix",
			uri:      "file://timezones/Australia",
			expected: "",
		},
		{
			name:     "regions list URI",
			uri:      "natal://timezones",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractRegion(tt.uri))
		})
	}
}

func TestServer_handleFieldsResource(t *testing.T) {
	server, err := NewServer(&Ports{Profile: &mockProfileService{}})
	require.NoError(t, err)

	result, err := server.handleFieldsResource(context.Background(), readRequest("natal://fields"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &fields))
	require.Len(t, fields, 7)
	assert.Equal(t, "name", fields[0]["field"])
	assert.Equal(t, "timezone", fields[6]["field"])
	assert.Equal(t, "Australia/Melbourne", fields[6]["example"])
}

func TestServer_handleRegionsResource(t *testing.T) {
	server, err := NewServer(&Ports{Profile: &mockProfileService{}, Timezone: newTestTimezones()})
	require.NoError(t, err)

	result, err := server.handleRegionsResource(context.Background(), readRequest("natal://timezones"))
	require.NoError(t, err)

	var regions []string
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &regions))
	assert.Equal(t, []string{"Africa", "Australia", "Europe"}, regions)
}

func TestServer_handleRegionResource(t *testing.T) {
	server, err := NewServer(&Ports{Profile: &mockProfileService{}, Timezone: newTestTimezones()})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("known region", func(t *testing.T) {
		result, err := server.handleRegionResource(ctx, readRequest("natal://timezones/Australia"))
		require.NoError(t, err)

		var zones []string
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &zones))
		assert.Equal(t, []string{"Australia/Melbourne", "Australia/Sydney"}, zones)
	})

	t.Run("unknown region", func(t *testing.T) {
		_, err := server.handleRegionResource(ctx, readRequest("natal://timezones/Atlantis"))
		require.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		_, err := server.handleRegionResource(ctx, readRequest("natal://other"))
		require.Error(t, err)
	})
}
