package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/graph"
)

// ReplayPromptResponse carries the rendered prompt for re-executing an
// alternative branch of a past decision point.
type ReplayPromptResponse struct {
	NodeID      int    `json:"node_id"`
	ChoiceLabel string `json:"choice_label"`
	Prompt      string `json:"prompt"`
}

// handleReplayPrompt handles GET /api/nodes/:id/replay-prompt requests.
// Query parameters:
//   - choice_label (required): the alternative branch to render
func (s *Server) handleReplayPrompt(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return s.renderError(c, err)
	}

	label := c.Query("choice_label")
	if label == "" {
		return s.renderError(c, decision.ValidationError{Field: "choice_label", Reason: "must not be empty"})
	}

	prompt, err := graph.ReplayPrompt(c.Context(), s.storer, id, label)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(ReplayPromptResponse{
		NodeID:      id,
		ChoiceLabel: label,
		Prompt:      prompt,
	})
}
