package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"sampurna-api-server/config"
	"sampurna-api-server/internal/models"
	"sampurna-api-server/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestBuildDocument_AttachesEqualTimestamps(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 11, 12, 987654321, time.FixedZone("X", 3600))
	msg := models.ContactMessage{Name: "Ana", Email: "ana@example.com", Subject: "Hi", Message: "Hello"}

	doc, err := BuildDocument(msg, now)
	require.NoError(t, err)

	assert.Equal(t, "Ana", doc["name"])
	assert.Equal(t, "ana@example.com", doc["email"])
	assert.Equal(t, "Hi", doc["subject"])
	assert.Equal(t, "Hello", doc["message"])

	want := now.UTC().Truncate(time.Millisecond)
	assert.Equal(t, want, doc[CreatedAtField])
	assert.Equal(t, doc[CreatedAtField], doc[UpdatedAtField])
	assert.NotContains(t, doc, IDField)
}

func TestBuildDocument_OptionalFieldsStoredAsNull(t *testing.T) {
	doc, err := BuildDocument(models.Organization{Name: "Acme"}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Acme", doc["name"])
	require.Contains(t, doc, "website")
	assert.Nil(t, doc["website"])
}

func TestBuildDocument_NilRecord(t *testing.T) {
	_, err := BuildDocument(nil, time.Now())
	assert.Error(t, err)
}

func TestUnavailableStoreFailsFast(t *testing.T) {
	s := Connect(context.Background(), config.MongoConfig{}, zap.NewNop())
	ctx := context.Background()

	assert.False(t, s.Available())
	assert.False(t, s.URIConfigured())
	assert.Equal(t, "", s.Name())

	_, err := s.CreateDocument(ctx, models.PickupRequestCollection, models.PickupRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.GetDocuments(ctx, models.FacilityCollection, nil, 10)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.CountDocuments(ctx, models.FacilityCollection, nil)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.ListCollectionNames(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, s.Ping(ctx), ErrUnavailable)
	assert.NoError(t, s.Disconnect(ctx))
}

func TestConnect_InvalidURILeavesStoreUnavailable(t *testing.T) {
	s := Connect(context.Background(), config.MongoConfig{URI: "not-a-mongo-url"}, zap.NewNop())

	assert.False(t, s.Available())
	assert.True(t, s.URIConfigured())
}

func TestDatabaseName(t *testing.T) {
	tcs := []struct {
		cfg  config.MongoConfig
		want string
	}{
		{config.MongoConfig{URI: "mongodb://localhost:27017", DBName: "explicit"}, "explicit"},
		{config.MongoConfig{URI: "mongodb://localhost:27017/fromuri"}, "fromuri"},
		{config.MongoConfig{URI: "mongodb://localhost:27017"}, DefaultDatabaseName},
	}
	for _, tc := range tcs {
		got, err := databaseName(tc.cfg)
		require.NoError(t, err, tc.cfg.URI)
		assert.Equal(t, tc.want, got, tc.cfg.URI)
	}
}

func TestPersistenceErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("wrapped: %w", &PersistenceError{Op: "insert", Collection: "facility", Err: cause})

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "insert", perr.Op)
	assert.ErrorIs(t, err, cause)
}

func TestIDString(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), IDString(oid))
	assert.Equal(t, "abc", IDString("abc"))
	assert.Equal(t, "42", IDString(42))
}

func TestSeedRecordsAreValid(t *testing.T) {
	for i := range seedFacilities {
		assert.NoError(t, validation.Validate(&seedFacilities[i]), seedFacilities[i].Name)
	}
	for i := range seedArticles {
		assert.NoError(t, validation.Validate(&seedArticles[i]), seedArticles[i].Slug)
	}
	for i := range seedReports {
		assert.NoError(t, validation.Validate(&seedReports[i]))
	}
}

// --- Integration tests, run only against a real server ---

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("TEST_DATABASE_URL")
	if uri == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("sampurna_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return NewWithDatabase(db, zap.NewNop())
}

func TestStore_CreateAndGetDocuments(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	req := models.PickupRequest{Name: "Ana", Address: "1 Main St", WasteType: "organic"}
	id, err := s.CreateDocument(ctx, models.PickupRequestCollection, req)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := s.GetDocuments(ctx, models.PickupRequestCollection, nil, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, id, IDString(doc[IDField]))
	assert.Equal(t, "Ana", doc["name"])
	assert.Equal(t, "organic", doc["waste_type"])
	assert.Contains(t, doc, CreatedAtField)
	assert.Equal(t, doc[CreatedAtField], doc[UpdatedAtField])
}

func TestStore_GetDocuments_LimitFilterAndOrder(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.CreateDocument(ctx, models.EducationalArticleCollection, models.EducationalArticle{
			Title: fmt.Sprintf("t%d", i), Slug: fmt.Sprintf("s%d", i), Excerpt: "e", Content: "c",
		})
		require.NoError(t, err)
	}

	docs, err := s.GetDocuments(ctx, models.EducationalArticleCollection, bson.M{}, 2)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "s0", docs[0]["slug"])
	assert.Equal(t, "s1", docs[1]["slug"])

	docs, err = s.GetDocuments(ctx, models.EducationalArticleCollection, bson.M{"slug": "s3"}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "t3", docs[0]["title"])

	docs, err = s.GetDocuments(ctx, models.FacilityCollection, nil, 100)
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestStore_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 2)
	errs := make([]error, 2)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = s.CreateDocument(ctx, models.PickupRequestCollection,
				models.PickupRequest{Name: "same", Address: "same", WasteType: "bulky"})
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.NotEqual(t, ids[0], ids[1])

	n, err := s.CountDocuments(ctx, models.PickupRequestCollection, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestSeedReferenceData_OnlyFillsEmptyCollections(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.CreateDocument(ctx, models.FacilityCollection, models.Facility{Name: "Existing", Address: "a", City: "c"})
	require.NoError(t, err)

	require.NoError(t, SeedReferenceData(ctx, s, zap.NewNop()))
	require.NoError(t, SeedReferenceData(ctx, s, zap.NewNop()))

	n, err := s.CountDocuments(ctx, models.FacilityCollection, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = s.CountDocuments(ctx, models.EducationalArticleCollection, nil)
	require.NoError(t, err)
	assert.EqualValues(t, len(seedArticles), n)

	n, err = s.CountDocuments(ctx, models.ReportCollection, nil)
	require.NoError(t, err)
	assert.EqualValues(t, len(seedReports), n)

	names, err := s.ListCollectionNames(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, models.ReportCollection)
	assert.NoError(t, s.Ping(ctx))
}
