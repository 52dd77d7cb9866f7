// server/internal/api/handlers/errors.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"sampurna-api-server/internal/api/middleware"
	"sampurna-api-server/internal/database"
	"sampurna-api-server/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReshapeError means a stored document no longer matches its schema.
type ReshapeError struct {
	Collection string
	Index      int
	Err        error
}

func (e *ReshapeError) Error() string {
	return fmt.Sprintf("document %d of %s does not match schema: %v", e.Index, e.Collection, e.Err)
}

func (e *ReshapeError) Unwrap() error { return e.Err }

type errorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// respondError maps an error to its HTTP response. Validation problems are
// the caller's fault and are returned in full; everything else is a 500 with
// a generic message and the cause only in the log.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *validation.Error
	var rerr *ReshapeError
	var perr *database.PersistenceError

	requestID := zap.String("request_id", middleware.GetRequestID(c))

	switch {
	case errors.As(err, &rerr):
		// Wraps a *validation.Error, but the stored data is at fault, not the caller.
		logger.Error("stored document failed re-validation", requestID, zap.String("collection", rerr.Collection), zap.Error(err))
	case errors.As(err, &verr):
		logger.Debug("request rejected", requestID, zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: verr.Fields})
		return
	case errors.Is(err, database.ErrUnavailable), errors.As(err, &perr):
		logger.Error("persistence failure", requestID, zap.Error(err))
	default:
		logger.Error("unexpected error", requestID, zap.Error(err))
	}
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
