package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atriumhq/atrium/pkg/decision"
)

// handleIngestEvent handles POST /api/events.
// The body is an ingestion envelope; the payload shape depends on event_type.
// Decoding failures and unknown event types map to 400, unresolved targets to
// 404. A successful ingestion reports the audit log id and the affected node.
func (s *Server) handleIngestEvent(c *fiber.Ctx) error {
	var req decision.IngestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	ev, err := decision.DecodeEvent(&req)
	if err != nil {
		return s.renderError(c, err)
	}

	result, err := s.reducer.Ingest(c.Context(), ev)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}
