// server/internal/models/common.go
package models

// Collection names: one collection per entity, named after it in lowercase.
const (
	FacilityCollection           = "facility"
	ReportCollection             = "report"
	EducationalArticleCollection = "educationalarticle"
	PickupRequestCollection      = "pickuprequest"
	ContactMessageCollection     = "contactmessage"
	OrganizationCollection       = "organization"
)

// Entity is implemented by every schema type that maps to a collection.
type Entity interface {
	CollectionName() string
}

// Normalizer fills defaults (empty lists) that a decoded document may lack.
type Normalizer interface {
	Normalize()
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
