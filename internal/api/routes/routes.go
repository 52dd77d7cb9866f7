// server/internal/api/routes/routes.go
package routes

import (
	"context"
	"time"

	"sampurna-api-server/internal/api/handlers"
	"sampurna-api-server/internal/api/middleware"
	"sampurna-api-server/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	readinessTimeout   = 3 * time.Second
	goroutineThreshold = 1000
)

// SetupRouter wires the middleware chain and every route around store.
func SetupRouter(store handlers.Store, logger *zap.Logger) *gin.Engine {
	// Request bodies and stored documents are checked by the same engine.
	binding.Validator = validation.Default

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(middleware.Metrics())

	// Any origin, echoed back so credentialed requests are accepted.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	statusHandler := &handlers.StatusHandler{Store: store, Log: logger}
	contentHandler := &handlers.ContentHandler{Store: store, Log: logger}
	submissionHandler := &handlers.SubmissionHandler{Store: store, Log: logger}

	router.GET("/", statusHandler.Root)
	router.GET("/test", statusHandler.TestDatabase)

	// Probes and metrics
	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(goroutineThreshold))
	health.AddReadinessCheck("mongo", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), readinessTimeout)
		defer cancel()
		return store.Ping(ctx)
	})
	router.GET("/live", gin.WrapH(health))
	router.GET("/ready", gin.WrapH(health))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		// Reference content (read only)
		api.GET("/articles", contentHandler.ListArticles)
		api.GET("/facilities", contentHandler.ListFacilities)
		api.GET("/reports", contentHandler.ListReports)

		// Submissions
		api.POST("/pickups", submissionHandler.CreatePickup)
		api.POST("/contact", submissionHandler.SubmitContact)
		api.POST("/partners", submissionHandler.SubmitPartner)
	}

	return router
}
