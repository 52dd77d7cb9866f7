// server/internal/api/handlers/submission_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"sampurna-api-server/internal/api/middleware"
	"sampurna-api-server/internal/models"
	"sampurna-api-server/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmissionHandler stores user-submitted forms.
type SubmissionHandler struct {
	Store DocumentStore
	Log   *zap.Logger
}

// IDResponse carries the id assigned to a stored submission.
type IDResponse struct {
	ID string `json:"id"`
}

// CreatePickup handles POST /api/pickups.
func (h *SubmissionHandler) CreatePickup(c *gin.Context) {
	submit[models.PickupRequest](c, h)
}

// SubmitContact handles POST /api/contact.
func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	submit[models.ContactMessage](c, h)
}

// SubmitPartner handles POST /api/partners.
func (h *SubmissionHandler) SubmitPartner(c *gin.Context) {
	submit[models.Organization](c, h)
}

// submit validates the body before anything is written.
func submit[T models.Entity](c *gin.Context, h *SubmissionHandler) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.Log, validation.FromBindError(err, &req))
		return
	}

	collection := req.CollectionName()
	id, err := h.Store.CreateDocument(c.Request.Context(), collection, req)
	if err != nil {
		respondError(c, h.Log, fmt.Errorf("create %s: %w", collection, err))
		return
	}

	middleware.ObserveSubmission(collection)
	h.Log.Info("submission stored", zap.String("collection", collection), zap.String("id", id),
		zap.String("request_id", middleware.GetRequestID(c)))
	c.JSON(http.StatusOK, IDResponse{ID: id})
}
