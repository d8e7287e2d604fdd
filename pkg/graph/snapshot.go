// Package graph assembles read-model views of a session's decision graph:
// consistent snapshots with optional filters, and replay prompts for
// re-executing an unchosen branch.
package graph

import (
	"context"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/storage"
)

// Filter narrows the node list of a snapshot. Filters combine; neither
// removes rows from the underlying store.
type Filter struct {
	// Status keeps only nodes with exactly this status.
	Status *decision.Status

	// UnchosenOnly keeps nodes that have at least one choice with none of
	// them chosen. Nodes with zero choices are still included: "no decision
	// needed yet" is distinct from "undecided".
	UnchosenOnly bool
}

// Snapshot assembles the session's nodes, edges, and choices into one
// consistent view. Nodes, edges, and choices come back in creation order;
// edges are scoped through their source node's session.
func Snapshot(ctx context.Context, r storage.Reader, sessionID int, filter Filter) (*decision.Graph, error) {
	sess, err := r.SessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	nodes, err := r.NodesBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	edges, err := r.EdgesBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	choices, err := r.ChoicesBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &decision.Graph{
		Session: sess,
		Nodes:   filterNodes(nodes, choices, filter),
		Edges:   edges,
		Choices: choices,
	}, nil
}

func filterNodes(nodes []*decision.Node, choices []*decision.Choice, filter Filter) []*decision.Node {
	if filter.Status == nil && !filter.UnchosenOnly {
		return nodes
	}

	chosenCount := make(map[int]int)
	for _, c := range choices {
		if c.IsChosen {
			chosenCount[c.NodeID]++
		}
	}

	out := make([]*decision.Node, 0, len(nodes))
	for _, n := range nodes {
		if filter.Status != nil && n.Status != *filter.Status {
			continue
		}
		if filter.UnchosenOnly && chosenCount[n.ID] > 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}
