package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/graph"
)

// handleGetGraph handles GET /api/sessions/:id/graph requests.
// Query parameters:
//   - status (optional): keep only nodes with this exact status
//   - unchosen_only (optional): keep only nodes whose choices are all unchosen
//
// Edges and choices are always returned in full; filters narrow the node list
// only.
func (s *Server) handleGetGraph(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return s.renderError(c, err)
	}

	var filter graph.Filter

	if raw := c.Query("status"); raw != "" {
		status := decision.Status(raw)
		if !decision.ValidStatus(status) {
			return s.renderError(c, decision.ValidationError{Field: "status", Reason: "must be one of open, in_progress, blocked, done"})
		}
		filter.Status = &status
	}

	if raw := c.Query("unchosen_only"); raw != "" {
		unchosen, err := strconv.ParseBool(raw)
		if err != nil {
			return s.renderError(c, decision.ValidationError{Field: "unchosen_only", Reason: "must be a boolean"})
		}
		filter.UnchosenOnly = unchosen
	}

	g, err := graph.Snapshot(c.Context(), s.storer, id, filter)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(g)
}
