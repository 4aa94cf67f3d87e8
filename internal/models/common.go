// server/internal/models/common.go
package models

// WasteType is one of the eight fixed waste categories.
type WasteType string

const (
	WastePlastic    WasteType = "plastic"
	WastePaper      WasteType = "paper"
	WasteMetal      WasteType = "metal"
	WasteGlass      WasteType = "glass"
	WasteElectronic WasteType = "electronic"
	WasteOrganic    WasteType = "organic"
	WasteTextile    WasteType = "textile"
	WasteBattery    WasteType = "battery"
)

// AllWasteTypes lists every supported category, in display order.
var AllWasteTypes = []WasteType{
	WastePlastic,
	WastePaper,
	WasteMetal,
	WasteGlass,
	WasteElectronic,
	WasteOrganic,
	WasteTextile,
	WasteBattery,
}

// IsValidWasteType reports whether t is a member of the fixed enumeration.
func IsValidWasteType(t WasteType) bool {
	for _, wt := range AllWasteTypes {
		if wt == t {
			return true
		}
	}
	return false
}

// Pickup request statuses. A request is created as StatusPending; later
// transitions come from the recycler or an admin, never from the requester
// (except cancellation while still pending).
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// IsValidStatus reports whether s is a known pickup status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Preferred time bands for a pickup visit.
const (
	TimeSlotMorning   = "morning"   // 8am - 12pm
	TimeSlotAfternoon = "afternoon" // 12pm - 4pm
	TimeSlotEvening   = "evening"   // 4pm - 8pm
	TimeSlotAny       = "any"
)

// IsValidTimeSlot accepts the empty string (no preference given).
func IsValidTimeSlot(s string) bool {
	switch s {
	case "", TimeSlotMorning, TimeSlotAfternoon, TimeSlotEvening, TimeSlotAny:
		return true
	}
	return false
}
