package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for natal resources.
	uriScheme = "natal://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "fields",
		Name:        "fields",
		Description: "Birth data fields in collection order, with expected formats",
		MIMEType:    "application/json",
	}, s.handleFieldsResource)

	if s.ports.Timezone == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "timezones",
		Name:        "timezone-regions",
		Description: "Top-level timezone regions",
		MIMEType:    "application/json",
	}, s.handleRegionsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "timezones/{region}",
		Name:        "region-timezones",
		Description: "Canonical timezone names under a region",
		MIMEType:    "application/json",
	}, s.handleRegionResource)
}

// handleFieldsResource describes every intake field.
func (s *Server) handleFieldsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type fieldInfo struct {
		Field   string `json:"field"`
		Label   string `json:"label"`
		Example string `json:"example"`
	}

	fields := domain.AllFields()
	infos := make([]fieldInfo, len(fields))
	for i, f := range fields {
		infos[i] = fieldInfo{
			Field:   f.String(),
			Label:   f.Label(),
			Example: f.Placeholder(),
		}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleRegionsResource returns the timezone regions.
func (s *Server) handleRegionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Timezone.Regions())
}

// handleRegionResource returns the canonical names under one region.
func (s *Server) handleRegionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract region from URI: natal://timezones/{region}
	region := extractRegion(req.Params.URI)
	if region == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	names, err := s.ports.Timezone.List(region)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("listing timezones: %w", err)
	}

	return jsonResource(req.Params.URI, names)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRegion extracts the region from a URI like natal://timezones/{region}.
func extractRegion(uri string) string {
	const prefix = uriScheme + "timezones/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
