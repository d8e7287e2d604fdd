package reducer

import (
	"context"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/storage"
)

// resolveNode resolves a supplied reference within the session: numeric
// references look up by internal id (session-constrained, never global),
// external references by the node's reference tag.
func resolveNode(ctx context.Context, tx storage.Reader, sessionID int, ref decision.Reference) (*decision.Node, error) {
	if id, ok := ref.Numeric(); ok {
		return tx.NodeInSession(ctx, sessionID, id)
	}
	if tag, ok := ref.External(); ok {
		return tx.NodeByExternalRef(ctx, sessionID, tag)
	}
	return nil, storage.NotFoundError{Entity: "node", Key: ref.String()}
}

// resolveTarget resolves the target node of a mutating event. An absent
// reference falls back to the latest question node in the session.
func resolveTarget(ctx context.Context, tx storage.Reader, sessionID int, ref decision.Reference) (*decision.Node, error) {
	if ref.IsAbsent() {
		return tx.LatestQuestionNode(ctx, sessionID)
	}
	return resolveNode(ctx, tx, sessionID, ref)
}
