package graph

import (
	"context"
	"strings"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/storage"
)

// ReplayPrompt renders a textual summary of a past decision point and the
// alternative branch to execute now, suitable for re-feeding into an agent.
//
//	Decision point: <title>
//	<context prompt, if present>
//	Previously chosen path: <label>: <text>
//	Alternative to execute now: <label>: <text>
//
// The "Previously chosen path" line is omitted entirely when no choice is
// currently marked chosen.
func ReplayPrompt(ctx context.Context, r storage.Reader, nodeID int, altLabel string) (string, error) {
	node, err := r.NodeByID(ctx, nodeID)
	if err != nil {
		return "", err
	}

	choices, err := r.ChoicesByNode(ctx, nodeID)
	if err != nil {
		return "", err
	}

	var alt, chosen *decision.Choice
	for _, c := range choices {
		if c.Label == altLabel {
			alt = c
		}
		if c.IsChosen {
			chosen = c
		}
	}
	if alt == nil {
		return "", storage.NotFoundError{Entity: "choice", Key: altLabel}
	}

	lines := []string{"Decision point: " + node.Title}
	if node.ContextPrompt != nil && *node.ContextPrompt != "" {
		lines = append(lines, *node.ContextPrompt)
	}
	if chosen != nil {
		lines = append(lines, "Previously chosen path: "+chosen.Label+": "+chosen.Text)
	}
	lines = append(lines, "Alternative to execute now: "+alt.Label+": "+alt.Text)

	return strings.Join(lines, "\n"), nil
}
