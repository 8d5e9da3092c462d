package tui

import "github.com/palmcar/rentaldesk/models"

// NavigateTo switches the RootModel to another registered page. An optional
// Payload is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// LoginResult finishes the login page's async command.
type LoginResult struct {
	Err  error
	User models.User
}

// RegisterResult reports a failed registration back to the page. A
// successful registration produces a LoginResult instead.
type RegisterResult struct {
	Err   error
	Email string
}

// GuestChosen ends the login flow without a signed-in account.
type GuestChosen struct{}

type fleetLoadedMsg struct {
	vehicles []models.Vehicle
	err      error
}

type bookingsLoadedMsg struct {
	bookings []models.Booking
	err      error
}

type bookingCreatedMsg struct {
	booking models.Booking
	err     error
}

type bookingStatusMsg struct {
	err error
}

type vehicleSavedMsg struct {
	err error
}

type vehicleDeletedMsg struct {
	err error
}

type accountSavedMsg struct {
	user models.User
	err  error
}

type reportLoadedMsg struct {
	summary models.ReportSummary
	err     error
}

type exportDoneMsg struct {
	path string
	err  error
}
