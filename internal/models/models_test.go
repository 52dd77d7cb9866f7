package models_test

import (
	"testing"

	"sampurna-api-server/internal/models"
	"sampurna-api-server/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fields(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	var out []string
	for _, f := range validation.FromError(err).Fields {
		out = append(out, f.Field)
	}
	return out
}

func validReport() models.Report {
	return models.Report{
		Year:                     ptr(2024),
		Month:                    ptr(6),
		WasteDivertedTons:        ptr(0.0),
		RecyclingRate:            ptr(100.0),
		EmissionsAvoidedTonsCO2e: ptr(0.0),
	}
}

func TestReport_Bounds(t *testing.T) {
	r := validReport()
	assert.NoError(t, validation.Validate(&r))

	tcs := []struct {
		name  string
		mut   func(*models.Report)
		field string
	}{
		{"month 13", func(r *models.Report) { r.Month = ptr(13) }, "month"},
		{"month 0", func(r *models.Report) { r.Month = ptr(0) }, "month"},
		{"year 1999", func(r *models.Report) { r.Year = ptr(1999) }, "year"},
		{"year 2101", func(r *models.Report) { r.Year = ptr(2101) }, "year"},
		{"rate 150", func(r *models.Report) { r.RecyclingRate = ptr(150.0) }, "recycling_rate"},
		{"negative tons", func(r *models.Report) { r.WasteDivertedTons = ptr(-1.0) }, "waste_diverted_tons"},
		{"negative co2e", func(r *models.Report) { r.EmissionsAvoidedTonsCO2e = ptr(-0.5) }, "emissions_avoided_tons_co2e"},
		{"missing year", func(r *models.Report) { r.Year = nil }, "year"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := validReport()
			tc.mut(&r)
			assert.Equal(t, []string{tc.field}, fields(t, validation.Validate(&r)))
		})
	}
}

func TestFacility_Validation(t *testing.T) {
	f := models.Facility{Name: "n", Address: "a", City: "c"}
	assert.NoError(t, validation.Validate(&f))

	f.ContactEmail = ptr("bad")
	assert.Equal(t, []string{"contact_email"}, fields(t, validation.Validate(&f)))

	assert.ElementsMatch(t, []string{"name", "address", "city"}, fields(t, validation.Validate(&models.Facility{})))
}

func TestFacility_NormalizeDefaultsEmptyList(t *testing.T) {
	f := models.Facility{}
	f.Normalize()
	assert.NotNil(t, f.AcceptedWasteTypes)
	assert.Empty(t, f.AcceptedWasteTypes)

	f.AcceptedWasteTypes = []string{"glass"}
	f.Normalize()
	assert.Equal(t, []string{"glass"}, f.AcceptedWasteTypes)
}

func TestEducationalArticle_Validation(t *testing.T) {
	a := models.EducationalArticle{}
	assert.ElementsMatch(t, []string{"title", "slug", "excerpt", "content"}, fields(t, validation.Validate(&a)))

	a.Normalize()
	assert.NotNil(t, a.Tags)
}

func TestSubmissions_Validation(t *testing.T) {
	p := models.PickupRequest{Name: "n", Address: "a", WasteType: "organic", PreferredDate: ptr("2025-01-31")}
	assert.NoError(t, validation.Validate(&p))
	p.PreferredDate = ptr("2025-02-31")
	assert.Equal(t, []string{"preferred_date"}, fields(t, validation.Validate(&p)))

	c := models.ContactMessage{Name: "n", Email: "n@example.com", Subject: "s", Message: "m"}
	assert.NoError(t, validation.Validate(&c))
	c.Email = ""
	assert.Equal(t, []string{"email"}, fields(t, validation.Validate(&c)))

	o := models.Organization{Name: "n", ContactEmail: ptr("x@y.org")}
	assert.NoError(t, validation.Validate(&o))
	assert.Equal(t, []string{"name"}, fields(t, validation.Validate(&models.Organization{})))
}

func TestCollectionNames(t *testing.T) {
	assert.Equal(t, "facility", models.Facility{}.CollectionName())
	assert.Equal(t, "report", models.Report{}.CollectionName())
	assert.Equal(t, "educationalarticle", models.EducationalArticle{}.CollectionName())
	assert.Equal(t, "pickuprequest", models.PickupRequest{}.CollectionName())
	assert.Equal(t, "contactmessage", models.ContactMessage{}.CollectionName())
	assert.Equal(t, "organization", models.Organization{}.CollectionName())
}
