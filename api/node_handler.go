package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/storage"
)

// CreateNodeRequest is the body of POST /api/nodes. Type follows the node
// kind vocabulary (question, decision, task); status defaults to open.
type CreateNodeRequest struct {
	SessionID     int     `json:"session_id"`
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	Status        string  `json:"status"`
	Rationale     *string `json:"rationale"`
	Owner         *string `json:"owner"`
	Priority      *int    `json:"priority"`
	ContextPrompt *string `json:"context_prompt"`
	ExternalRef   *string `json:"external_ref"`
	ParentNodeID  *int    `json:"parent_node_id"`
}

// PatchNodeRequest is the body of PATCH /api/nodes/:id. Absent fields are
// left untouched.
type PatchNodeRequest struct {
	Status    *string `json:"status"`
	Rationale *string `json:"rationale"`
	Owner     *string `json:"owner"`
	Priority  *int    `json:"priority"`
}

// handleCreateNode creates a node directly, bypassing event ingestion. An
// optional parent_node_id links the new node under an existing one.
func (s *Server) handleCreateNode(c *fiber.Ctx) error {
	var req CreateNodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	kind := decision.Kind(strings.TrimSpace(req.Type))
	if !decision.ValidKind(kind) {
		return s.renderError(c, decision.ValidationError{Field: "type", Reason: "must be one of question, decision, task"})
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return s.renderError(c, decision.ValidationError{Field: "title", Reason: "must not be empty"})
	}

	status := decision.StatusOpen
	if req.Status != "" {
		status = decision.Status(req.Status)
		if !decision.ValidStatus(status) {
			return s.renderError(c, decision.ValidationError{Field: "status", Reason: "must be one of open, in_progress, blocked, done"})
		}
	}

	n := &decision.Node{
		SessionID:     req.SessionID,
		Kind:          kind,
		Title:         req.Title,
		Status:        status,
		Rationale:     req.Rationale,
		Owner:         req.Owner,
		Priority:      req.Priority,
		ContextPrompt: req.ContextPrompt,
		ExternalRef:   req.ExternalRef,
	}

	var created *decision.Node
	err := s.storer.Atomic(c.Context(), func(tx storage.Mutator) error {
		if _, err := tx.SessionByID(c.Context(), req.SessionID); err != nil {
			return err
		}

		var err error
		created, err = tx.CreateNode(c.Context(), n)
		if err != nil {
			return err
		}

		if req.ParentNodeID != nil {
			parent, err := tx.NodeInSession(c.Context(), req.SessionID, *req.ParentNodeID)
			if err != nil {
				return err
			}
			_, err = tx.CreateEdge(c.Context(), &decision.Edge{
				FromNodeID: parent.ID,
				ToNodeID:   created.ID,
				Type:       decision.EdgeLeadsTo,
			})
			return err
		}
		return nil
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// handleGetNode returns a single node by id, with its choices.
func (s *Server) handleGetNode(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return s.renderError(c, err)
	}

	node, err := s.storer.NodeByID(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}
	choices, err := s.storer.ChoicesByNode(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(map[string]any{
		"node":    node,
		"choices": choices,
	})
}

// handlePatchNode updates a node's mutable fields.
func (s *Server) handlePatchNode(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return s.renderError(c, err)
	}

	var req PatchNodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	if req.Status != nil && !decision.ValidStatus(decision.Status(*req.Status)) {
		return s.renderError(c, decision.ValidationError{Field: "status", Reason: "must be one of open, in_progress, blocked, done"})
	}

	var node *decision.Node
	err = s.storer.Atomic(c.Context(), func(tx storage.Mutator) error {
		var err error
		node, err = tx.NodeByID(c.Context(), id)
		if err != nil {
			return err
		}

		if req.Status != nil {
			node.Status = decision.Status(*req.Status)
		}
		if req.Rationale != nil {
			node.Rationale = req.Rationale
		}
		if req.Owner != nil {
			node.Owner = req.Owner
		}
		if req.Priority != nil {
			node.Priority = req.Priority
		}

		return tx.SaveNode(c.Context(), node)
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(node)
}
