// server/internal/models/report.go
package models

// Report holds monthly impact figures for the platform.
type Report struct {
	Year                     *int     `bson:"year" json:"year" binding:"required,gte=2000,lte=2100"`
	Month                    *int     `bson:"month" json:"month" binding:"required,gte=1,lte=12"`
	WasteDivertedTons        *float64 `bson:"waste_diverted_tons" json:"waste_diverted_tons" binding:"required,gte=0"`
	RecyclingRate            *float64 `bson:"recycling_rate" json:"recycling_rate" binding:"required,gte=0,lte=100"` // percent
	EmissionsAvoidedTonsCO2e *float64 `bson:"emissions_avoided_tons_co2e" json:"emissions_avoided_tons_co2e" binding:"required,gte=0"`
}

func (Report) CollectionName() string { return ReportCollection }
