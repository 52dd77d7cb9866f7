// server/internal/database/seeder.go
package database

import (
	"context"
	"fmt"

	"sampurna-api-server/internal/models"
	"sampurna-api-server/internal/validation"

	"go.uber.org/zap"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// Built-in reference content. Inserted only into empty collections.
var (
	seedFacilities = []models.Facility{
		{
			Name:               "Green Loop Recycling Centre",
			Address:            "12 Harbour Road",
			City:               "Cape Town",
			Province:           strPtr("Western Cape"),
			PostalCode:         strPtr("8001"),
			Latitude:           floatPtr(-33.9142),
			Longitude:          floatPtr(18.4232),
			AcceptedWasteTypes: []string{"plastic", "paper", "glass", "metal"},
			ContactPhone:       strPtr("+27 21 555 0100"),
			ContactEmail:       strPtr("hello@greenloop.example"),
		},
		{
			Name:               "Northside E-Waste Depot",
			Address:            "88 Industrial Avenue",
			City:               "Johannesburg",
			Province:           strPtr("Gauteng"),
			AcceptedWasteTypes: []string{"e-waste", "batteries"},
		},
		{
			Name:               "Riverside Community Compost",
			Address:            "3 Mill Lane",
			City:               "Durban",
			AcceptedWasteTypes: []string{"organic"},
		},
	}

	seedArticles = []models.EducationalArticle{
		{
			Title:   "Sorting 101: What Goes in Which Bin",
			Slug:    "sorting-101",
			Excerpt: "A quick guide to separating recyclables, organics and landfill waste at home.",
			Content: "Rinse containers before recycling. Keep paper dry. Food scraps and garden waste belong in the organics bin. " +
				"Anything soiled or mixed-material usually goes to landfill.",
			Tags: []string{"basics", "sorting"},
		},
		{
			Title:   "Why E-Waste Needs Special Handling",
			Slug:    "why-e-waste-needs-special-handling",
			Excerpt: "Old phones and batteries contain metals that should never reach a landfill.",
			Content: "Electronics contain lead, mercury and lithium. Take them to a dedicated e-waste depot where they can be " +
				"dismantled safely and valuable metals recovered.",
			Tags: []string{"e-waste", "safety"},
		},
		{
			Title:   "Composting at Home",
			Slug:    "composting-at-home",
			Excerpt: "Turn kitchen scraps into soil in a few weeks.",
			Content: "Balance greens and browns, keep the pile moist, and turn it weekly.",
			Tags:    []string{"organic", "composting"},
		},
	}

	seedReports = []models.Report{
		{
			Year:                     intPtr(2024),
			Month:                    intPtr(11),
			WasteDivertedTons:        floatPtr(412.5),
			RecyclingRate:            floatPtr(38.2),
			EmissionsAvoidedTonsCO2e: floatPtr(295.1),
		},
		{
			Year:                     intPtr(2024),
			Month:                    intPtr(12),
			WasteDivertedTons:        floatPtr(455.0),
			RecyclingRate:            floatPtr(40.7),
			EmissionsAvoidedTonsCO2e: floatPtr(321.8),
		},
	}
)

// SeedReferenceData fills the facility, article and report collections with
// built-in records when they are empty.
func SeedReferenceData(ctx context.Context, s *Store, logger *zap.Logger) error {
	if err := seedCollection(ctx, s, logger, seedFacilities); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, logger, seedArticles); err != nil {
		return err
	}
	return seedCollection(ctx, s, logger, seedReports)
}

func seedCollection[T models.Entity](ctx context.Context, s *Store, logger *zap.Logger, records []T) error {
	if len(records) == 0 {
		return nil
	}
	collection := records[0].CollectionName()

	count, err := s.CountDocuments(ctx, collection, nil)
	if err != nil {
		return fmt.Errorf("seed %s: %w", collection, err)
	}
	if count > 0 {
		logger.Info("collection already has data, seeding skipped", zap.String("collection", collection), zap.Int64("count", count))
		return nil
	}

	logger.Info("seeding collection", zap.String("collection", collection), zap.Int("records", len(records)))
	for i := range records {
		if err := validation.Validate(&records[i]); err != nil {
			return fmt.Errorf("seed %s record %d: %w", collection, i, err)
		}
		if _, err := s.CreateDocument(ctx, collection, records[i]); err != nil {
			return fmt.Errorf("seed %s record %d: %w", collection, i, err)
		}
	}
	return nil
}
