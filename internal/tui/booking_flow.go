package tui

import (
	"fmt"
	"strings"

	"github.com/palmcar/rentaldesk/internal/service"
	"github.com/palmcar/rentaldesk/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ── Vehicle detail ───────────────────────────────────────────────────────────

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vehicle, ok := m.current()
	if !ok {
		m.mode = modeCatalog
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.mode = modeCatalog
	case "b", "enter":
		m.startBookingForm(vehicle)
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	vehicle, ok := m.current()
	if !ok {
		return renderPage("VEHICLE", "Vehicle not found", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Name          │ " + vehicle.Name + "\n")
	b.WriteString("Category      │ " + models.CategoryLabel(vehicle.Category) + "\n")
	b.WriteString("Price per day │ " + money(vehicle.PricePerDay) + "\n")
	b.WriteString(fmt.Sprintf("Seats         │ %d\n", vehicle.Seats))
	b.WriteString("Transmission  │ " + string(vehicle.Transmission) + "\n")
	b.WriteString("Fuel          │ " + valueOrDash(vehicle.Fuel) + "\n")
	b.WriteString("A/C           │ " + yesNo(vehicle.AC) + "\n")
	if strings.TrimSpace(vehicle.Description) != "" {
		b.WriteString("\n")
		b.WriteString(vehicle.Description)
		b.WriteString("\n")
	}

	return renderPage("VEHICLE — "+vehicle.Name, strings.TrimRight(b.String(), "\n"), "b: book │ esc: back")
}

// ── Booking form ─────────────────────────────────────────────────────────────

func (m *mainLoopModel) startBookingForm(vehicle models.Vehicle) {
	pickupDate := textinput.New()
	pickupDate.Placeholder = "YYYY-MM-DD"
	pickupDate.CharLimit = 10
	pickupDate.Width = 40
	pickupDate.Focus()

	returnDate := textinput.New()
	returnDate.Placeholder = "YYYY-MM-DD"
	returnDate.CharLimit = 10
	returnDate.Width = 40

	pickupLoc := textinput.New()
	pickupLoc.Placeholder = "pick-up branch (optional)"
	pickupLoc.Width = 40

	returnLoc := textinput.New()
	returnLoc.Placeholder = "return branch (optional)"
	returnLoc.Width = 40

	m.bookingVehicle = vehicle
	m.bookingInputs = []textinput.Model{pickupDate, returnDate, pickupLoc, returnLoc}
	m.bookingFocus = 0
	m.bookingSubmitting = false
	m.errMsg = ""
	m.mode = modeBookingForm
}

func (m mainLoopModel) updateBookingForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeCatalog
			m.errMsg = ""
			return m, nil
		case "tab":
			m.bookingInputs[m.bookingFocus].Blur()
			m.bookingFocus = (m.bookingFocus + 1) % len(m.bookingInputs)
			m.bookingInputs[m.bookingFocus].Focus()
			return m, nil
		case "shift+tab":
			m.bookingInputs[m.bookingFocus].Blur()
			m.bookingFocus = (m.bookingFocus - 1 + len(m.bookingInputs)) % len(m.bookingInputs)
			m.bookingInputs[m.bookingFocus].Focus()
			return m, nil
		case "enter":
			if m.bookingSubmitting {
				return m, nil
			}

			pickupDate := strings.TrimSpace(m.bookingInputs[0].Value())
			returnDate := strings.TrimSpace(m.bookingInputs[1].Value())
			if pickupDate == "" || returnDate == "" {
				m.errMsg = "pick-up and return dates are required"
				return m, nil
			}

			m.errMsg = ""
			m.bookingSubmitting = true
			return m, m.cmdCreateBooking(service.CreateBookingInput{
				Vehicle:        m.bookingVehicle,
				PickupLocation: strings.TrimSpace(m.bookingInputs[2].Value()),
				ReturnLocation: strings.TrimSpace(m.bookingInputs[3].Value()),
				PickupDate:     pickupDate,
				ReturnDate:     returnDate,
				UserID:         m.session.UserID,
			})
		}
	}

	var cmd tea.Cmd
	m.bookingInputs[m.bookingFocus], cmd = m.bookingInputs[m.bookingFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewBookingForm() string {
	var b strings.Builder
	b.WriteString("Vehicle          │ " + m.bookingVehicle.Name + " (" + money(m.bookingVehicle.PricePerDay) + "/day)\n")
	b.WriteString("Pick-up date     │ [" + m.bookingInputs[0].View() + "]\n")
	b.WriteString("Return date      │ [" + m.bookingInputs[1].View() + "]\n")
	b.WriteString("Pick-up branch   │ [" + m.bookingInputs[2].View() + "]\n")
	b.WriteString("Return branch    │ [" + m.bookingInputs[3].View() + "]\n")

	if m.bookingSubmitting {
		b.WriteString("\n[Booking...]\n")
	} else {
		b.WriteString("\n[Book]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage("BOOK A VEHICLE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m mainLoopModel) cmdCreateBooking(in service.CreateBookingInput) tea.Cmd {
	ctx := m.ctx
	svc := m.services.BookingService

	return func() tea.Msg {
		booking, err := svc.Create(ctx, in)
		return bookingCreatedMsg{booking: booking, err: err}
	}
}

// ── Confirmation ─────────────────────────────────────────────────────────────

func (m mainLoopModel) updateConfirmation(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "enter", "q":
		m.mode = modeCatalog
		m.status = ""
	case "c":
		if err := clipboard.WriteAll(m.lastBooking.BookingID); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Reference copied"
	}

	return m, nil
}

func (m mainLoopModel) viewConfirmation() string {
	booking := m.lastBooking

	var b strings.Builder
	b.WriteString(overlayBoxStyle.Render("Your booking is confirmed!"))
	b.WriteString("\n\n")
	b.WriteString("Reference       │ " + booking.BookingID + "\n")
	b.WriteString("Vehicle         │ " + booking.Vehicle.Name + "\n")
	b.WriteString("Pick-up         │ " + booking.PickupDate + " at " + booking.PickupLocation + "\n")
	b.WriteString("Return          │ " + booking.ReturnDate + " at " + booking.ReturnLocation + "\n")
	b.WriteString(fmt.Sprintf("Days            │ %d\n", booking.TotalDays))
	b.WriteString("Total           │ " + money(booking.TotalPrice) + "\n")

	if m.status != "" {
		b.WriteString("\nStatus: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage("BOOKING CONFIRMED", strings.TrimRight(b.String(), "\n"), "c: copy reference │ enter: back to catalog")
}
