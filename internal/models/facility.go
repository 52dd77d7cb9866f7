// server/internal/models/facility.go
package models

// Facility is a recycling / drop-off site listed as reference content.
type Facility struct {
	Name               string   `bson:"name" json:"name" binding:"required"`
	Address            string   `bson:"address" json:"address" binding:"required"`
	City               string   `bson:"city" json:"city" binding:"required"`
	Province           *string  `bson:"province" json:"province"`
	PostalCode         *string  `bson:"postal_code" json:"postal_code"`
	Latitude           *float64 `bson:"latitude" json:"latitude"`
	Longitude          *float64 `bson:"longitude" json:"longitude"`
	AcceptedWasteTypes []string `bson:"accepted_waste_types" json:"accepted_waste_types"` // e.g. "plastic", "e-waste"
	ContactPhone       *string  `bson:"contact_phone" json:"contact_phone"`
	ContactEmail       *string  `bson:"contact_email" json:"contact_email" binding:"omitempty,email"`
}

func (Facility) CollectionName() string { return FacilityCollection }

func (f *Facility) Normalize() {
	f.AcceptedWasteTypes = emptyIfNil(f.AcceptedWasteTypes)
}
