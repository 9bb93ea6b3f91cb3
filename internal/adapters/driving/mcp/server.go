package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bidassist/bidassist-cli/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// instructionsFormat is sent to clients on initialize. %s is the backend origin.
const instructionsFormat = `BidAssist exposes the RFP analysis backend at %s.
Call upload_rfp with the path of a PDF tender document first; the backend then
derives technical_summary, scope_of_supply, spec_match and oem_recommendations
for the last uploaded RFP. spec_match rows pair each RFP item with an OEM SKU and
a match percentage from 0 to 100. upload_history lists past upload attempts,
newest first. The same data is readable as bidassist://panels/{panel} resources.`

// Instructions returns the client instructions for a backend origin.
func Instructions(origin string) string {
	return fmt.Sprintf(instructionsFormat, origin)
}

// Server is the MCP server for BidAssist.
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
		Name:    "bidassist",
		Title:   "RFP BidAssist",
		Version: Version,
	}
	opts := &mcp.ServerOptions{
		Instructions: Instructions(ports.Dashboard.Origin()),
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, opts),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("mcp: serving stdio for backend %s", s.ports.Dashboard.Origin())
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

	logger.Info("mcp: listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
