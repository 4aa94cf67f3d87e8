// server/internal/pricing/pricing.go
package pricing

import (
	"math"
	"strconv"
	"strings"

	"cleanconnect-api-server/internal/models"
)

// PricePerKg is the fixed rate table in rupees per kilogram. Recyclers may
// quote their own prices in their profiles; the pickup estimate always uses
// this table.
var PricePerKg = map[models.WasteType]float64{
	models.WastePlastic:    10,
	models.WastePaper:      8,
	models.WasteMetal:      25,
	models.WasteGlass:      5,
	models.WasteElectronic: 15,
	models.WasteOrganic:    3,
	models.WasteTextile:    12,
	models.WasteBattery:    20,
}

// Estimate returns the price estimate for the given waste type and the raw
// weight string as entered in the form. An unknown type or a weight that does
// not parse to a finite number yields 0. The estimate itself does not reject
// zero or negative weights; the submission gateway does.
func Estimate(wasteType models.WasteType, weight string) float64 {
	rate, ok := PricePerKg[wasteType]
	if !ok {
		return 0
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return rate * w
}
