package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/storage"
)

// ErrorResponse is the JSON body returned on handler failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// renderError maps domain and storage errors onto HTTP status codes:
// validation and unknown event types are the caller's fault (400), missing
// entities are 404, uniqueness collisions are 409, everything else is 500.
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	var (
		validation  decision.ValidationError
		unsupported decision.UnsupportedEventTypeError
		notFound    storage.NotFoundError
		conflict    storage.ConflictError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &unsupported):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})
	default:
		s.logger.Error("request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
	}
}

// idParam parses the :id route parameter.
func idParam(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, decision.ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	return id, nil
}
