package api

import (
	"net/http"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/pkg/reducer"
	"github.com/atriumhq/atrium/pkg/storage"
)

// Server is the API server for managing and querying the Atrium system
type Server struct {
	config  Config
	storer  storage.Driver
	reducer *reducer.Reducer
	logger  *zap.Logger
	app     *fiber.App
}

// NewServer creates a new API server.
// The storer and reducer are injected so they can be shared with other
// components (e.g., the MCP server).
func NewServer(config Config, storer storage.Driver, red *reducer.Reducer, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:  config,
		storer:  storer,
		reducer: red,
		logger:  logger,
		app:     app,
	}

	app.Get("/ping", s.handlePing)

	app.Post("/api/events", s.handleIngestEvent)

	app.Get("/api/sessions", s.handleListSessions)
	app.Post("/api/sessions", s.handleCreateSession)
	app.Get("/api/sessions/:id", s.handleGetSession)
	app.Post("/api/sessions/:id/end", s.handleEndSession)
	app.Get("/api/sessions/:id/graph", s.handleGetGraph)

	app.Post("/api/nodes", s.handleCreateNode)
	app.Get("/api/nodes/:id", s.handleGetNode)
	app.Patch("/api/nodes/:id", s.handlePatchNode)
	app.Get("/api/nodes/:id/replay-prompt", s.handleReplayPrompt)

	return s
}

// MountMCP mounts the MCP streamable HTTP handler under /mcp.
func (s *Server) MountMCP(handler http.Handler) {
	s.app.All("/mcp", adaptor.HTTPHandler(handler))
	s.app.All("/mcp/*", adaptor.HTTPHandler(handler))
}

// App returns the underlying fiber app, used by tests to drive requests
// without a listener.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
