package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atriumhq/atrium/pkg/graph"
)

var (
	replayToolName    = "build_replay_prompt"
	replayDescription = "Build a prompt for re-executing an alternative branch of a past decision point. Given a node id and the label of an unchosen choice, returns the decision context, the previously chosen path, and the alternative to execute now."
)

// ReplayPromptInput represents the input arguments for the replay tool.
type ReplayPromptInput struct {
	NodeID      int    `json:"node_id" jsonschema:"internal id of the decision node"`
	ChoiceLabel string `json:"choice_label" jsonschema:"label of the alternative choice to execute"`
}

// ReplayPromptOutput represents the rendered replay prompt.
type ReplayPromptOutput struct {
	NodeID      int    `json:"node_id"`
	ChoiceLabel string `json:"choice_label"`
	Prompt      string `json:"prompt"`
}

// handleReplayPrompt renders the replay prompt for an alternative branch.
func (s *Server) handleReplayPrompt(ctx context.Context, _ *mcp.CallToolRequest, input ReplayPromptInput) (*mcp.CallToolResult, ReplayPromptOutput, error) {
	if input.NodeID <= 0 {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: "node_id is required"},
			},
		}, ReplayPromptOutput{}, nil
	}
	if input.ChoiceLabel == "" {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: "choice_label is required"},
			},
		}, ReplayPromptOutput{}, nil
	}

	prompt, err := graph.ReplayPrompt(ctx, s.config.Storer, input.NodeID, input.ChoiceLabel)
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to build replay prompt: %v", err)},
			},
		}, ReplayPromptOutput{}, nil
	}

	output := ReplayPromptOutput{
		NodeID:      input.NodeID,
		ChoiceLabel: input.ChoiceLabel,
		Prompt:      prompt,
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: prompt},
		},
	}, output, nil
}
