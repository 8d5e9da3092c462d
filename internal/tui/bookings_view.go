package tui

import (
	"fmt"
	"strings"

	"github.com/palmcar/rentaldesk/models"
	tea "github.com/charmbracelet/bubbletea"
)

func renderBookingsTable(bookings []models.Booking, selected int) string {
	if len(bookings) == 0 {
		return "No bookings yet\n"
	}

	out := "     │ Reference        │ Vehicle              │ Dates                   │ Total    │ Status\n"
	out += "─────┼──────────────────┼──────────────────────┼─────────────────────────┼──────────┼──────────\n"
	for i, booking := range bookings {
		cursor := " "
		if i == selected {
			cursor = ">"
		}
		out += fmt.Sprintf(
			"%s %-3d│ %-16s │ %-20s │ %s → %s │ %-8s │ %s\n",
			cursor,
			i+1,
			fitText(booking.BookingID, 16),
			fitText(booking.Vehicle.Name, 20),
			booking.PickupDate,
			booking.ReturnDate,
			money(booking.TotalPrice),
			booking.Status,
		)
	}

	return out
}

// ── My bookings (signed-in user) ─────────────────────────────────────────────

func (m mainLoopModel) updateMyBookings(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.mode = modeCatalog
	case "up", "k":
		if m.bookingIdx > 0 {
			m.bookingIdx--
		}
	case "down", "j":
		if m.bookingIdx < len(m.bookings)-1 {
			m.bookingIdx++
		}
	}

	return m, nil
}

func (m mainLoopModel) viewMyBookings() string {
	if m.loading {
		return renderPage("MY BOOKINGS", "Loading bookings...", "esc: back")
	}

	out := ""
	if m.errMsg != "" {
		out += renderError(m.errMsg)
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}
	out += renderBookingsTable(m.bookings, m.bookingIdx)

	return renderPage("MY BOOKINGS", strings.TrimRight(out, "\n"), "↑/↓: move │ esc: back")
}
