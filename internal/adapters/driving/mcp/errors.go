// Package mcp provides an MCP (Model Context Protocol) server adapter for natal.
// It lets AI assistants validate birth data and browse timezones.
package mcp

import "errors"

// ErrMissingProfileService is returned when the profile service is not provided.
var ErrMissingProfileService = errors.New("mcp: profile service is required")
