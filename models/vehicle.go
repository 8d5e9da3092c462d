package models

// VehicleCategory classifies a vehicle within the rental catalog.
// Persisted as a plain string.
type VehicleCategory string

const (
	CategoryEconomy VehicleCategory = "economy"
	CategoryCompact VehicleCategory = "compact"
	CategoryMidsize VehicleCategory = "midsize"
	CategorySUV     VehicleCategory = "suv"
	CategoryLuxury  VehicleCategory = "luxury"
)

// CategoryLabel returns a human-readable label for a vehicle category.
// Unknown categories are returned as-is so older records still render.
func CategoryLabel(c VehicleCategory) string {
	switch c {
	case CategoryEconomy:
		return "Economy"
	case CategoryCompact:
		return "Compact"
	case CategoryMidsize:
		return "Midsize"
	case CategorySUV:
		return "SUV"
	case CategoryLuxury:
		return "Luxury"
	default:
		return string(c)
	}
}

// Transmission is a vehicle transmission mode.
type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

// Vehicle is one unit of rentable inventory.
//
// Records are mutated in place by administrator edits and carry no version
// field; the last write wins. Bookings embed a full copy of this struct, so
// editing or deleting a vehicle never alters historical bookings.
type Vehicle struct {
	// ID is the opaque catalog identifier ("car-" + generated suffix).
	ID string `json:"id"`

	// Name is the display name shown in listings (e.g. "Skyline Cruiser").
	Name string `json:"name"`

	// Category is one of the fixed catalog categories.
	Category VehicleCategory `json:"type"`

	// Image is the primary image reference.
	Image string `json:"image"`

	// Images holds additional image references in display order.
	Images []string `json:"images"`

	// PricePerDay is the daily rental price. Always positive.
	PricePerDay float64 `json:"pricePerDay"`

	// Seats is the passenger seat count. Always positive.
	Seats int `json:"seats"`

	// Transmission is automatic or manual.
	Transmission Transmission `json:"transmission"`

	// Fuel is a free-text fuel descriptor (e.g. "Petrol", "Hybrid").
	Fuel string `json:"fuel"`

	// AC reports whether the vehicle has air conditioning.
	AC bool `json:"ac"`

	// Description is free text shown on the detail page.
	Description string `json:"description"`
}

// VehiclePatch carries a partial vehicle update. Nil fields are left
// untouched; the ID is never updatable.
type VehiclePatch struct {
	Name         *string
	Category     *VehicleCategory
	Image        *string
	Images       *[]string
	PricePerDay  *float64
	Seats        *int
	Transmission *Transmission
	Fuel         *string
	AC           *bool
	Description  *string
}
