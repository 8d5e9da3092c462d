package store

import (
	"github.com/palmcar/rentaldesk/internal/utils"
	"github.com/palmcar/rentaldesk/models"
)

// DefaultFleet returns the catalog written on first access to an empty
// fleet store. IDs are stable so demo bookings survive re-seeding a fresh
// installation.
func DefaultFleet() []models.Vehicle {
	return []models.Vehicle{
		{
			ID:           "car-1",
			Name:         "Palm City Go",
			Category:     models.CategoryEconomy,
			Image:        "https://images.unsplash.com/photo-1502877338535-766e1452684a",
			Images:       []string{"https://images.unsplash.com/photo-1502877338535-766e1452684a"},
			PricePerDay:  35,
			Seats:        4,
			Transmission: models.TransmissionManual,
			Fuel:         "Petrol",
			AC:           true,
			Description:  "A nimble city runabout with excellent fuel economy. Perfect for errands and short hops around town.",
		},
		{
			ID:           "car-2",
			Name:         "Coastal Compact",
			Category:     models.CategoryCompact,
			Image:        "https://images.unsplash.com/photo-1542362567-b07e54358753",
			Images:       []string{"https://images.unsplash.com/photo-1542362567-b07e54358753"},
			PricePerDay:  45,
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			Fuel:         "Petrol",
			AC:           true,
			Description:  "Comfortable compact with automatic transmission and room for five. A solid all-rounder.",
		},
		{
			ID:           "car-3",
			Name:         "Harbor Sedan",
			Category:     models.CategoryMidsize,
			Image:        "https://images.unsplash.com/photo-1550355291-bbee04a92027",
			Images:       []string{"https://images.unsplash.com/photo-1550355291-bbee04a92027"},
			PricePerDay:  50,
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			Fuel:         "Hybrid",
			AC:           true,
			Description:  "Quiet hybrid sedan with a generous trunk. Great for longer trips and business travel.",
		},
		{
			ID:           "car-4",
			Name:         "Dune Tracker",
			Category:     models.CategorySUV,
			Image:        "https://images.unsplash.com/photo-1519641471654-76ce0107ad1b",
			Images:       []string{"https://images.unsplash.com/photo-1519641471654-76ce0107ad1b"},
			PricePerDay:  75,
			Seats:        7,
			Transmission: models.TransmissionAutomatic,
			Fuel:         "Diesel",
			AC:           true,
			Description:  "Seven-seat SUV with all-wheel drive. Takes the whole family, luggage included.",
		},
		{
			ID:           "car-5",
			Name:         "Lagoon Grand Tourer",
			Category:     models.CategoryLuxury,
			Image:        "https://images.unsplash.com/photo-1503376780353-7e6692767b70",
			Images:       []string{"https://images.unsplash.com/photo-1503376780353-7e6692767b70"},
			PricePerDay:  140,
			Seats:        4,
			Transmission: models.TransmissionAutomatic,
			Fuel:         "Petrol",
			AC:           true,
			Description:  "Leather, glass roof and a very long bonnet. Arrive like you mean it.",
		},
		{
			ID:           "car-6",
			Name:         "Breeze Cabrio",
			Category:     models.CategoryLuxury,
			Image:        "https://images.unsplash.com/photo-1525609004556-c46c7d6cf023",
			Images:       []string{"https://images.unsplash.com/photo-1525609004556-c46c7d6cf023"},
			PricePerDay:  120,
			Seats:        2,
			Transmission: models.TransmissionAutomatic,
			Fuel:         "Petrol",
			AC:           false,
			Description:  "Two seats, no roof, all coastline. The classic holiday convertible.",
		},
	}
}

// DefaultUsers returns the two fixed demo accounts written on first access
// to an empty user store: one administrator and one standard user.
func DefaultUsers() []models.User {
	return []models.User{
		{
			ID:               "admin-1",
			Email:            "admin@palmcar.com",
			Name:             "Admin",
			Role:             models.RoleAdmin,
			PasswordChecksum: utils.PasswordChecksum("admin123"),
		},
		{
			ID:               "user-1",
			Email:            "user@example.com",
			Name:             "Jane Doe",
			Role:             models.RoleUser,
			PasswordChecksum: utils.PasswordChecksum("user123"),
		},
	}
}
