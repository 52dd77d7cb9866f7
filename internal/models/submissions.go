// server/internal/models/submissions.go
package models

// PickupRequest asks for waste to be collected at an address.
type PickupRequest struct {
	Name          string  `bson:"name" json:"name" binding:"required"`
	Email         *string `bson:"email" json:"email" binding:"omitempty,email"`
	Phone         *string `bson:"phone" json:"phone"`
	Address       string  `bson:"address" json:"address" binding:"required"`
	City          *string `bson:"city" json:"city"`
	WasteType     string  `bson:"waste_type" json:"waste_type" binding:"required"` // recyclable, organic, e-waste, bulky
	PreferredDate *string `bson:"preferred_date" json:"preferred_date" binding:"omitempty,datetime=2006-01-02"`
	Notes         *string `bson:"notes" json:"notes"`
}

func (PickupRequest) CollectionName() string { return PickupRequestCollection }

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	Name    string `bson:"name" json:"name" binding:"required"`
	Email   string `bson:"email" json:"email" binding:"required,email"`
	Subject string `bson:"subject" json:"subject" binding:"required"`
	Message string `bson:"message" json:"message" binding:"required"`
}

func (ContactMessage) CollectionName() string { return ContactMessageCollection }

// Organization is a partner organization registration.
type Organization struct {
	Name         string  `bson:"name" json:"name" binding:"required"`
	Website      *string `bson:"website" json:"website"`
	ContactEmail *string `bson:"contact_email" json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `bson:"contact_phone" json:"contact_phone"`
	Address      *string `bson:"address" json:"address"`
	City         *string `bson:"city" json:"city"`
	Country      *string `bson:"country" json:"country"`
	Description  *string `bson:"description" json:"description"`
}

func (Organization) CollectionName() string { return OrganizationCollection }
