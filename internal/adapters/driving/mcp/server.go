package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

const baseInstructions = `natal validates birth data for a natal chart.
Fields, in collection order: name, birth_date (YYYY-MM-DD), birth_time (HH:MM, 24-hour), city,
latitude and longitude (decimal degrees with a decimal point), timezone (canonical name such as Australia/Melbourne).
Use validate_field to check one value as it is collected and validate_birth_data to check a complete set.
A rejected timezone may carry a suggestion; offer it to the user rather than substituting it.
The natal://fields resource lists every field with an example value.`

const timezoneInstructions = `
Use list_timezones, or read natal://timezones and natal://timezones/{region}, to browse canonical timezone names.`

// instructions describes the registered tools for connecting clients.
func instructions(ports *Ports) string {
	if ports.Timezone == nil {
		return baseInstructions
	}
	return baseInstructions + timezoneInstructions
}

// Server is the MCP server for natal.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "natal",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions(ports)}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
