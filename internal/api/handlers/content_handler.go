// server/internal/api/handlers/content_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"sampurna-api-server/internal/database"
	"sampurna-api-server/internal/models"
	"sampurna-api-server/internal/validation"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Default page sizes of the read endpoints.
const (
	DefaultArticleLimit  = 20
	DefaultFacilityLimit = 100
	DefaultReportLimit   = 12
)

// ContentHandler serves the read-only reference content.
type ContentHandler struct {
	Store DocumentStore
	Log   *zap.Logger
}

// ListArticles handles GET /api/articles.
func (h *ContentHandler) ListArticles(c *gin.Context) {
	listEntities[models.EducationalArticle](c, h, DefaultArticleLimit)
}

// ListFacilities handles GET /api/facilities.
func (h *ContentHandler) ListFacilities(c *gin.Context) {
	listEntities[models.Facility](c, h, DefaultFacilityLimit)
}

// ListReports handles GET /api/reports.
func (h *ContentHandler) ListReports(c *gin.Context) {
	listEntities[models.Report](c, h, DefaultReportLimit)
}

// listEntities reads up to limit documents of T's collection and re-validates
// each one. A single bad document fails the whole request.
func listEntities[T any, PT interface {
	*T
	models.Entity
}](c *gin.Context, h *ContentHandler, defaultLimit int64) {
	limit, err := parseLimit(c, defaultLimit)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	collection := PT(new(T)).CollectionName()
	docs, err := h.Store.GetDocuments(c.Request.Context(), collection, bson.M{}, limit)
	if err != nil {
		respondError(c, h.Log, fmt.Errorf("list %s: %w", collection, err))
		return
	}

	items := make([]T, 0, len(docs))
	for i, doc := range docs {
		var item T
		if err := reshape(doc, PT(&item)); err != nil {
			respondError(c, h.Log, &ReshapeError{Collection: collection, Index: i, Err: err})
			return
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, items)
}

// reshape strips the store id from doc, decodes it into out, fills defaults
// and validates the result.
func reshape(doc bson.M, out any) error {
	delete(doc, database.IDField)

	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return err
	}
	if n, ok := out.(models.Normalizer); ok {
		n.Normalize()
	}
	return validation.Validate(out)
}

func parseLimit(c *gin.Context, defaultLimit int64) (int64, error) {
	raw, ok := c.GetQuery("limit")
	if !ok {
		return defaultLimit, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &validation.Error{Fields: []validation.FieldError{{Field: "limit", Reason: "must be a valid integer"}}}
	}
	if limit < 0 {
		return 0, &validation.Error{Fields: []validation.FieldError{{Field: "limit", Reason: "must be greater than or equal to 0"}}}
	}
	return limit, nil
}
