// server/internal/database/store.go
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sampurna-api-server/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

// DefaultDatabaseName is used when neither DATABASE_NAME nor the connection
// string names a database.
const DefaultDatabaseName = "sampurna"

// Timestamp fields attached to every inserted document.
const (
	CreatedAtField = "created_at"
	UpdatedAtField = "updated_at"
	IDField        = "_id"
)

// ErrUnavailable is returned by every operation when the connection could not
// be initialized at startup.
var ErrUnavailable = errors.New("database: connection not initialized")

// PersistenceError wraps a driver failure for one operation on a collection.
type PersistenceError struct {
	Op         string
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("database: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store owns the process-wide MongoDB handle. A Store whose initialization
// failed stays usable but every call fails fast with ErrUnavailable.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	uriSet bool
	log    *zap.Logger
	now    func() time.Time
}

// Connect builds the Store from configuration. It never fails: problems are
// logged and leave the Store unavailable. The initial ping is informational
// only, the driver reconnects lazily.
func Connect(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) *Store {
	s := &Store{uriSet: cfg.URI != "", log: logger, now: time.Now}

	if cfg.URI == "" {
		logger.Warn("DATABASE_URL is not set, persistence is unavailable")
		return s
	}

	name, err := databaseName(cfg)
	if err != nil {
		logger.Error("invalid DATABASE_URL, persistence is unavailable", zap.Error(err))
		return s
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetConnectTimeout(cfg.Timeout).SetServerSelectionTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("could not create mongo client, persistence is unavailable", zap.Error(err))
		return s
	}

	pingCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn("initial mongo ping failed", zap.String("database", name), zap.Error(err))
	} else {
		logger.Info("connected to mongo", zap.String("database", name))
	}

	s.client = client
	s.db = client.Database(name)
	return s
}

// NewWithDatabase wraps an already connected database.
func NewWithDatabase(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{client: db.Client(), db: db, uriSet: true, log: logger, now: time.Now}
}

func databaseName(cfg config.MongoConfig) (string, error) {
	if cfg.DBName != "" {
		return cfg.DBName, nil
	}
	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err != nil {
		return "", err
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return DefaultDatabaseName, nil
}

// Available reports whether the handle was initialized.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// URIConfigured reports whether a connection string was provided at all.
func (s *Store) URIConfigured() bool {
	return s != nil && s.uriSet
}

// Name returns the database name, or "" when unavailable.
func (s *Store) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

// BuildDocument returns the stored shape of record: its encoded fields plus
// created_at and updated_at, both set to now.
func BuildDocument(record any, now time.Time) (bson.M, error) {
	if record == nil {
		return nil, errors.New("database: nil record")
	}
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	// Mongo keeps millisecond precision.
	ts := now.UTC().Truncate(time.Millisecond)
	doc[CreatedAtField] = ts
	doc[UpdatedAtField] = ts
	return doc, nil
}

// CreateDocument inserts record into collection and returns the generated id.
func (s *Store) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}

	doc, err := BuildDocument(record, s.now())
	if err != nil {
		return "", &PersistenceError{Op: "encode", Collection: collection, Err: err}
	}

	result, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &PersistenceError{Op: "insert", Collection: collection, Err: err}
	}
	return IDString(result.InsertedID), nil
}

// GetDocuments returns up to limit documents of collection matching the
// exact-match filter, in natural order. A limit of 0 means no limit.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, &PersistenceError{Op: "find", Collection: collection, Err: err}
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &PersistenceError{Op: "decode", Collection: collection, Err: err}
	}
	return docs, nil
}

// CountDocuments counts documents of collection matching filter.
func (s *Store) CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if !s.Available() {
		return 0, ErrUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}
	n, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, &PersistenceError{Op: "count", Collection: collection, Err: err}
	}
	return n, nil
}

// ListCollectionNames lists the collections of the database.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, &PersistenceError{Op: "listCollections", Collection: s.db.Name(), Err: err}
	}
	return names, nil
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrUnavailable
	}
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return &PersistenceError{Op: "ping", Collection: s.db.Name(), Err: err}
	}
	return nil
}

// Disconnect closes the client. It is a no-op on an unavailable Store.
func (s *Store) Disconnect(ctx context.Context) error {
	if !s.Available() {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// IDString renders an inserted id as a string.
func IDString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
