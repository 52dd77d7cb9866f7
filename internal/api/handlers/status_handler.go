// server/internal/api/handlers/status_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxDiagnosticCollections = 10
	maxDiagnosticErrorLen    = 80
	diagnosticTimeout        = 5 * time.Second
)

type StatusHandler struct {
	Store DiagnosticStore
	Log   *zap.Logger
}

// DiagnosticResponse is the body of GET /test.
type DiagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root is the liveness payload for GET /.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": "Sampurna", "status": "ok", "message": "Sampurna API is running"})
}

// TestDatabase reports on the database connection. It always answers 200;
// every failure, including a panic in the probe, ends up in the payload.
func (h *StatusHandler) TestDatabase(c *gin.Context) {
	resp := DiagnosticResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				h.Log.Error("database diagnostic panicked", zap.Any("panic", r))
				resp.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxDiagnosticErrorLen)
			}
		}()
		h.probe(c.Request.Context(), &resp)
	}()

	c.JSON(http.StatusOK, resp)
}

func (h *StatusHandler) probe(ctx context.Context, resp *DiagnosticResponse) {
	if h.Store == nil || !h.Store.Available() {
		resp.Database = "⚠️ Available but not initialized"
		return
	}

	resp.Database = "✅ Available"
	if h.Store.URIConfigured() {
		resp.DatabaseURL = "✅ Set"
	}
	if name := h.Store.Name(); name != "" {
		resp.DatabaseName = name
	} else {
		resp.DatabaseName = "❌ Unknown"
	}

	ctx, cancel := context.WithTimeout(ctx, diagnosticTimeout)
	defer cancel()

	names, err := h.Store.ListCollectionNames(ctx)
	if err != nil {
		h.Log.Warn("database diagnostic: listing collections failed", zap.Error(err))
		resp.Database = "⚠️ Connected but Error: " + truncate(err.Error(), maxDiagnosticErrorLen)
		return
	}
	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	if names != nil {
		resp.Collections = names
	}
	resp.Database = "✅ Connected & Working"
	resp.ConnectionStatus = "Connected"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
