package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/storage"
)

// CreateSessionRequest is the body of POST /api/sessions.
type CreateSessionRequest struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
}

// handleListSessions returns all sessions, newest first.
func (s *Server) handleListSessions(c *fiber.Ctx) error {
	sessions, err := s.storer.Sessions(c.Context())
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(map[string]any{
		"count":    len(sessions),
		"sessions": sessions,
	})
}

// handleCreateSession creates a session explicitly, ahead of any events.
// A duplicate external id is a 409.
func (s *Server) handleCreateSession(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return s.renderError(c, decision.ValidationError{Field: "name", Reason: "must not be empty"})
	}

	sess := &decision.Session{Name: req.Name}
	if ext := strings.TrimSpace(req.ExternalID); ext != "" {
		sess.ExternalID = &ext
	}
	started := time.Now()
	sess.StartedAt = &started

	var created *decision.Session
	err := s.storer.Atomic(c.Context(), func(tx storage.Mutator) error {
		var err error
		created, err = tx.CreateSession(c.Context(), sess)
		return err
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// handleGetSession returns a single session by id.
func (s *Server) handleGetSession(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return s.renderError(c, err)
	}

	sess, err := s.storer.SessionByID(c.Context(), id)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(sess)
}

// handleEndSession marks a session ended. Ending an already-ended session
// leaves its ended_at untouched.
func (s *Server) handleEndSession(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return s.renderError(c, err)
	}

	var sess *decision.Session
	err = s.storer.Atomic(c.Context(), func(tx storage.Mutator) error {
		var err error
		sess, err = tx.SessionByID(c.Context(), id)
		if err != nil {
			return err
		}
		if sess.EndedAt != nil {
			return nil
		}
		ended := time.Now()
		sess.EndedAt = &ended
		return tx.SaveSession(c.Context(), sess)
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(sess)
}
