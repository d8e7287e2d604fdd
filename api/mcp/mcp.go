// Package mcp provides an MCP (Model Context Protocol) server for the Atrium system.
package mcp

import (
	"errors"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/pkg/reducer"
	"github.com/atriumhq/atrium/pkg/storage"
	"github.com/atriumhq/atrium/pkg/utils"
)

type Config struct {
	// Storer reads session graphs and replay data
	Storer storage.Driver

	// Reducer applies recorded decision events
	Reducer *reducer.Reducer

	// Noop for empty MCP server
	Noop bool

	// Logger is the configured zap logger
	Logger *zap.Logger
}

type Server struct {
	config    Config
	mcpServer *mcp.Server
	handler   *mcp.StreamableHTTPHandler
}

// NewServer creates a new MCP server with the decision tools.
func NewServer(c Config) (*Server, error) {
	s := &Server{
		config: c,
	}

	// Create the MCP server
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "atrium",
			Version: utils.Version,
		},
		&mcp.ServerOptions{},
	)

	if c.Noop {
		// return the empty MCP server with no tools configured
		// if the noop flag is set (i.e., MCP capabilities are disabled)
		s.mcpServer = mcpServer
		return s, nil
	}

	if c.Storer == nil {
		return nil, errors.New("storage driver is required")
	}
	if c.Reducer == nil {
		return nil, errors.New("reducer is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}

	// Add tools
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        recordToolName,
		Description: recordDescription,
	}, s.handleRecordEvent)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        graphToolName,
		Description: graphDescription,
	}, s.handleSessionGraph)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        replayToolName,
		Description: replayDescription,
	}, s.handleReplayPrompt)

	s.mcpServer = mcpServer

	// Create a streamable HTTP net/http handler for stateless operations
	s.handler = mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server {
			return mcpServer
		},
		&mcp.StreamableHTTPOptions{
			Stateless: true,
		},
	)

	return s, nil
}

// Handler returns the HTTP handler for the MCP server.
func (s *Server) Handler() http.Handler {
	return s.handler
}
