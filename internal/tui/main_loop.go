package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/palmcar/rentaldesk/internal/service"
	"github.com/palmcar/rentaldesk/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type viewMode int

const (
	modeCatalog viewMode = iota
	modeDetail
	modeBookingForm
	modeConfirmation
	modeMyBookings
	modeAdminBookings
	modeVehicleForm
	modeAccount
	modeReports
)

// mainLoopModel drives everything after the login flow: the vehicle
// catalog, the booking flow, the signed-in user's bookings and profile, and
// the administrator screens.
type mainLoopModel struct {
	ctx      context.Context
	services *service.Services

	session    models.Session
	hasSession bool

	mode    viewMode
	loading bool
	status  string
	errMsg  string

	vehicles []models.Vehicle
	idx      int

	bookings   []models.Booking
	bookingIdx int

	// booking form
	bookingVehicle    models.Vehicle
	bookingInputs     []textinput.Model
	bookingFocus      int
	bookingSubmitting bool
	lastBooking       models.Booking

	// admin vehicle form
	vehicleInputs []textinput.Model
	vehicleFocus  int
	vehicleEditID string
	vehicleSaving bool

	// account form
	accountInputs []textinput.Model
	accountFocus  int
	accountSaving bool

	report models.ReportSummary

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, session models.Session, hasSession bool) mainLoopModel {
	return mainLoopModel{
		ctx:        ctx,
		services:   services,
		session:    session,
		hasSession: hasSession,
		loading:    true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadFleet()
}

func (m mainLoopModel) isAdmin() bool {
	return m.hasSession && m.session.IsAdmin()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fleetLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.vehicles = msg.vehicles
		if m.idx >= len(m.vehicles) {
			m.idx = len(m.vehicles) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case bookingsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.bookings = msg.bookings
		if m.bookingIdx >= len(m.bookings) {
			m.bookingIdx = len(m.bookings) - 1
		}
		if m.bookingIdx < 0 {
			m.bookingIdx = 0
		}
		return m, nil
	case bookingCreatedMsg:
		m.bookingSubmitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.lastBooking = msg.booking
		m.mode = modeConfirmation
		return m, nil
	case bookingStatusMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Booking updated"
		m.loading = true
		return m, m.cmdLoadAllBookings()
	case vehicleSavedMsg:
		m.vehicleSaving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Vehicle saved"
		m.mode = modeCatalog
		m.loading = true
		return m, m.cmdLoadFleet()
	case vehicleDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Vehicle deleted"
		m.loading = true
		return m, m.cmdLoadFleet()
	case accountSavedMsg:
		m.accountSaving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Profile updated"
		m.session.Name = msg.user.Name
		m.session.Email = msg.user.Email
		m.mode = modeCatalog
		return m, nil
	case reportLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.report = msg.summary
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Exported to " + msg.path
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		switch m.mode {
		case modeBookingForm:
			return m.updateBookingForm(msg)
		case modeVehicleForm:
			return m.updateVehicleForm(msg)
		case modeAccount:
			return m.updateAccountForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeBookingForm:
		return m.updateBookingForm(msg)
	case modeVehicleForm:
		return m.updateVehicleForm(msg)
	case modeAccount:
		return m.updateAccountForm(msg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeConfirmation:
		return m.updateConfirmation(keyMsg)
	case modeMyBookings:
		return m.updateMyBookings(keyMsg)
	case modeAdminBookings:
		return m.updateAdminBookings(keyMsg)
	case modeReports:
		return m.updateReports(keyMsg)
	}

	return m.updateCatalog(keyMsg)
}

func (m mainLoopModel) updateCatalog(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.vehicles)-1 {
			m.idx++
		}
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "No vehicles"
			return m, nil
		}
		m.mode = modeDetail
	case "b":
		vehicle, ok := m.current()
		if !ok {
			m.status = "No vehicles"
			return m, nil
		}
		m.startBookingForm(vehicle)
		return m, nil
	case "m":
		if !m.hasSession {
			m.status = "Sign in to see your bookings"
			return m, nil
		}
		m.mode = modeMyBookings
		m.loading = true
		return m, m.cmdLoadMyBookings()
	case "p":
		if !m.hasSession {
			m.status = "Sign in to edit your profile"
			return m, nil
		}
		m.startAccountForm()
		return m, nil
	case "n":
		if !m.isAdmin() {
			return m, nil
		}
		m.startVehicleForm(models.Vehicle{})
		return m, nil
	case "e":
		if !m.isAdmin() {
			return m, nil
		}
		vehicle, ok := m.current()
		if !ok {
			m.status = "No vehicles"
			return m, nil
		}
		m.startVehicleForm(vehicle)
		return m, nil
	case "ctrl+d":
		if !m.isAdmin() {
			return m, nil
		}
		vehicle, ok := m.current()
		if !ok {
			m.status = "No vehicles"
			return m, nil
		}
		return m, m.cmdDeleteVehicle(vehicle.ID)
	case "g":
		if !m.isAdmin() {
			return m, nil
		}
		m.mode = modeAdminBookings
		m.loading = true
		return m, m.cmdLoadAllBookings()
	case "r":
		if !m.isAdmin() {
			return m, nil
		}
		m.mode = modeReports
		m.loading = true
		return m, m.cmdLoadReport()
	case "x":
		if !m.isAdmin() {
			return m, nil
		}
		return m, m.cmdExportFleet()
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeBookingForm:
		return m.viewBookingForm()
	case modeConfirmation:
		return m.viewConfirmation()
	case modeMyBookings:
		return m.viewMyBookings()
	case modeAdminBookings:
		return m.viewAdminBookings()
	case modeVehicleForm:
		return m.viewVehicleForm()
	case modeAccount:
		return m.viewAccountForm()
	case modeReports:
		return m.viewReports()
	}

	return m.viewCatalog()
}

func (m mainLoopModel) viewCatalog() string {
	out := ""

	if m.loading {
		return renderPage("VEHICLE CATALOG", "Loading catalog...", m.catalogHotKeys())
	}

	if m.errMsg != "" {
		out += renderError(m.errMsg)
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}

	out += m.headerLine() + "\n\n"

	if len(m.vehicles) == 0 {
		out += "No vehicles in the catalog\n"
	} else {
		out += "     │ Name                     │ Category │ Seats │ Price/day\n"
		out += "─────┼──────────────────────────┼──────────┼───────┼──────────\n"
		for i, vehicle := range m.vehicles {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-8s │ %-5d │ %s\n",
				cursor,
				i+1,
				fitText(vehicle.Name, 24),
				fitText(string(vehicle.Category), 8),
				vehicle.Seats,
				money(vehicle.PricePerDay),
			)
		}
	}

	return renderPage("VEHICLE CATALOG", strings.TrimRight(out, "\n"), m.catalogHotKeys())
}

func (m mainLoopModel) headerLine() string {
	if !m.hasSession {
		return "Browsing as guest"
	}
	who := fmt.Sprintf("Signed in as %s <%s>", m.session.Name, m.session.Email)
	if m.isAdmin() {
		who += " [admin]"
	}
	return who
}

func (m mainLoopModel) catalogHotKeys() string {
	base := "enter: details │ b: book │ ↑/↓: move"
	if m.hasSession {
		base += " │ m: my bookings │ p: profile"
	}
	if m.isAdmin() {
		base += "\nadmin — n: new │ e: edit │ ctrl+d: delete │ g: bookings │ r: reports │ x: export"
	}
	if m.hasSession {
		base += "\nl: sign out │ q: quit"
	} else {
		base += "\nl: sign in │ q: quit"
	}
	return base
}

func (m mainLoopModel) current() (models.Vehicle, bool) {
	if m.idx < 0 || m.idx >= len(m.vehicles) {
		return models.Vehicle{}, false
	}
	return m.vehicles[m.idx], true
}

func (m mainLoopModel) currentBooking() (models.Booking, bool) {
	if m.bookingIdx < 0 || m.bookingIdx >= len(m.bookings) {
		return models.Booking{}, false
	}
	return m.bookings[m.bookingIdx], true
}

// ── Async commands ───────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadFleet() tea.Cmd {
	ctx := m.ctx
	svc := m.services.FleetService

	return func() tea.Msg {
		vehicles, err := svc.List(ctx)
		return fleetLoadedMsg{vehicles: vehicles, err: err}
	}
}

func (m mainLoopModel) cmdLoadMyBookings() tea.Cmd {
	ctx := m.ctx
	svc := m.services.BookingService
	userID := m.session.UserID

	return func() tea.Msg {
		bookings, err := svc.ListForUser(ctx, userID)
		return bookingsLoadedMsg{bookings: bookings, err: err}
	}
}

func (m mainLoopModel) cmdLoadAllBookings() tea.Cmd {
	ctx := m.ctx
	svc := m.services.BookingService

	return func() tea.Msg {
		bookings, err := svc.ListAll(ctx)
		return bookingsLoadedMsg{bookings: bookings, err: err}
	}
}

func (m mainLoopModel) cmdSetBookingStatus(bookingID string, status models.BookingStatus) tea.Cmd {
	ctx := m.ctx
	svc := m.services.BookingService

	return func() tea.Msg {
		return bookingStatusMsg{err: svc.UpdateStatus(ctx, bookingID, status)}
	}
}

func (m mainLoopModel) cmdDeleteVehicle(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FleetService

	return func() tea.Msg {
		_, err := svc.Delete(ctx, id)
		return vehicleDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdLoadReport() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReportService

	return func() tea.Msg {
		summary, err := svc.Summary(ctx)
		return reportLoadedMsg{summary: summary, err: err}
	}
}

func (m mainLoopModel) cmdExportFleet() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ExportService

	return func() tea.Msg {
		path, err := svc.WriteFleetFile(ctx)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m mainLoopModel) cmdExportBookings() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ExportService

	return func() tea.Msg {
		path, err := svc.WriteBookingsFile(ctx)
		return exportDoneMsg{path: path, err: err}
	}
}
