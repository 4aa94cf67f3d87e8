// server/internal/models/recycler.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Availability describes when a recycler accepts pickups.
type Availability struct {
	Days  []string `bson:"days" json:"days"`   // e.g., ["Mon", "Wed", "Fri"]
	Hours string   `bson:"hours" json:"hours"` // e.g., "9am - 6pm"
}

// Recycler is a service provider who collects and pays for waste materials.
// Only verified recyclers appear in public listings.
type Recycler struct {
	ID           primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	Name         string                `bson:"name" json:"name"`
	Phone        string                `bson:"phone" json:"phone"`
	Email        string                `bson:"email,omitempty" json:"email,omitempty"`
	Address      string                `bson:"address" json:"address"`
	Area         string                `bson:"area" json:"area"`
	WasteTypes   []WasteType           `bson:"wasteTypes" json:"wasteTypes"`
	Rating       float64               `bson:"rating" json:"rating"`
	IsVerified   bool                  `bson:"isVerified" json:"isVerified"`
	PricePerKg   map[WasteType]float64 `bson:"pricePerKg" json:"pricePerKg"`
	Availability Availability          `bson:"availability" json:"availability"`
	CreatedAt    time.Time             `bson:"createdAt" json:"createdAt"`
}

// NormalizePriceTable fills in a zero price for every waste type the recycler
// did not quote, so the stored document always carries all eight keys.
func NormalizePriceTable(quoted map[WasteType]float64) map[WasteType]float64 {
	full := make(map[WasteType]float64, len(AllWasteTypes))
	for _, wt := range AllWasteTypes {
		full[wt] = 0
	}
	for wt, price := range quoted {
		if IsValidWasteType(wt) {
			full[wt] = price
		}
	}
	return full
}
