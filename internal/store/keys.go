package store

// Storage keys for the four top-level collections. The palmcar_ prefix is
// kept from the original data layout so existing exports and snapshots
// remain recognizable.
const (
	KeyFleet    = "palmcar_fleet"
	KeyUsers    = "palmcar_users"
	KeySession  = "palmcar_session"
	KeyBookings = "palmcar_bookings"

	// KeyFleetSeeded marks that the default catalog has been written once.
	// Its presence, not the fleet's emptiness, decides whether to seed.
	KeyFleetSeeded = "palmcar_fleet_seeded"
)
