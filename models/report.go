package models

// CategoryCount is one row of the fleet-by-category breakdown.
type CategoryCount struct {
	Category VehicleCategory `json:"category"`
	Count    int             `json:"count"`
}

// ReportSummary aggregates booking and fleet metrics for the reports
// screen and exports.
type ReportSummary struct {
	// Confirmed, Completed and Cancelled count bookings per status.
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`

	// RevenueCompleted is the sum of total price over completed rentals.
	RevenueCompleted float64 `json:"revenueCompleted"`

	// FleetByCategory lists catalog counts per category, most common first.
	FleetByCategory []CategoryCount `json:"fleetByCategory"`
}
