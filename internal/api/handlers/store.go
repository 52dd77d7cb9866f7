// server/internal/api/handlers/store.go
package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// DocumentStore is the slice of the persistence layer the API reads and
// writes through. *database.Store satisfies it.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, record any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
}

// DiagnosticStore exposes connection state for the diagnostic endpoint.
type DiagnosticStore interface {
	Available() bool
	URIConfigured() bool
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// Store is everything the router needs from the persistence layer.
type Store interface {
	DocumentStore
	DiagnosticStore
	Ping(ctx context.Context) error
}
