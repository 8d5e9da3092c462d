// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Palmcar Rentals

package tui

import (
	"strconv"
	"strings"

	"github.com/palmcar/rentaldesk/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ── Admin: all bookings ──────────────────────────────────────────────────────

func (m mainLoopModel) updateAdminBookings(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.mode = modeCatalog
		return m, nil
	case "up", "k":
		if m.bookingIdx > 0 {
			m.bookingIdx--
		}
	case "down", "j":
		if m.bookingIdx < len(m.bookings)-1 {
			m.bookingIdx++
		}
	case "c", "o", "x":
		booking, ok := m.currentBooking()
		if !ok {
			m.status = "No bookings"
			return m, nil
		}
		status := map[string]models.BookingStatus{
			"c": models.StatusConfirmed,
			"o": models.StatusCompleted,
			"x": models.StatusCancelled,
		}[keyMsg.String()]
		return m, m.cmdSetBookingStatus(booking.BookingID, status)
	case "e":
		return m, m.cmdExportBookings()
	}

	return m, nil
}

func (m mainLoopModel) viewAdminBookings() string {
	if m.loading {
		return renderPage("ALL BOOKINGS", "Loading bookings...", "esc: back")
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

	return renderPage("ALL BOOKINGS", strings.TrimRight(out, "\n"),
		"c: confirm │ o: complete │ x: cancel │ e: export │ ↑/↓: move │ esc: back")
}

// ── Admin: vehicle form ──────────────────────────────────────────────────────

// startVehicleForm opens the add/edit form. A vehicle with an empty ID
// means a new catalog record.
func (m *mainLoopModel) startVehicleForm(vehicle models.Vehicle) {
	labels := []struct {
		placeholder string
		value       string
	}{
		{"name", vehicle.Name},
		{"economy/compact/midsize/suv/luxury", string(vehicle.Category)},
		{"price per day", priceValue(vehicle)},
		{"seats", seatsValue(vehicle)},
		{"automatic/manual", string(vehicle.Transmission)},
		{"fuel", vehicle.Fuel},
		{"a/c (yes/no)", yesNoValue(vehicle)},
		{"description", vehicle.Description},
	}

	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = l.placeholder
		inputs[i].Width = 40
		inputs[i].SetValue(l.value)
	}
	inputs[0].Focus()

	m.vehicleInputs = inputs
	m.vehicleFocus = 0
	m.vehicleEditID = vehicle.ID
	m.vehicleSaving = false
	m.errMsg = ""
	m.mode = modeVehicleForm
}

func priceValue(v models.Vehicle) string {
	if v.PricePerDay == 0 {
		return ""
	}
	return strconv.FormatFloat(v.PricePerDay, 'f', -1, 64)
}

func seatsValue(v models.Vehicle) string {
	if v.Seats == 0 {
		return ""
	}
	return strconv.Itoa(v.Seats)
}

func yesNoValue(v models.Vehicle) string {
	if v.ID == "" {
		return ""
	}
	return strings.ToLower(yesNo(v.AC))
}

func (m mainLoopModel) updateVehicleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeCatalog
			m.errMsg = ""
			return m, nil
		case "tab":
			m.vehicleInputs[m.vehicleFocus].Blur()
			m.vehicleFocus = (m.vehicleFocus + 1) % len(m.vehicleInputs)
			m.vehicleInputs[m.vehicleFocus].Focus()
			return m, nil
		case "shift+tab":
			m.vehicleInputs[m.vehicleFocus].Blur()
			m.vehicleFocus = (m.vehicleFocus - 1 + len(m.vehicleInputs)) % len(m.vehicleInputs)
			m.vehicleInputs[m.vehicleFocus].Focus()
			return m, nil
		case "enter":
			if m.vehicleSaving {
				return m, nil
			}

			fields, err := m.collectVehicleFields()
			if err != "" {
				m.errMsg = err
				return m, nil
			}

			m.errMsg = ""
			m.vehicleSaving = true
			return m, m.cmdSaveVehicle(m.vehicleEditID, fields)
		}
	}

	var cmd tea.Cmd
	m.vehicleInputs[m.vehicleFocus], cmd = m.vehicleInputs[m.vehicleFocus].Update(msg)
	return m, cmd
}

// collectVehicleFields parses the form into a vehicle record. Returns a
// non-empty message on validation failure.
func (m mainLoopModel) collectVehicleFields() (models.Vehicle, string) {
	name := strings.TrimSpace(m.vehicleInputs[0].Value())
	if name == "" {
		return models.Vehicle{}, "name is required"
	}

	category := models.VehicleCategory(strings.ToLower(strings.TrimSpace(m.vehicleInputs[1].Value())))
	switch category {
	case models.CategoryEconomy, models.CategoryCompact, models.CategoryMidsize, models.CategorySUV, models.CategoryLuxury:
	default:
		return models.Vehicle{}, "category must be economy, compact, midsize, suv or luxury"
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(m.vehicleInputs[2].Value()), 64)
	if err != nil || price <= 0 {
		return models.Vehicle{}, "price per day must be a positive number"
	}

	seats, err := strconv.Atoi(strings.TrimSpace(m.vehicleInputs[3].Value()))
	if err != nil || seats <= 0 {
		return models.Vehicle{}, "seats must be a positive number"
	}

	transmission := models.Transmission(strings.ToLower(strings.TrimSpace(m.vehicleInputs[4].Value())))
	if transmission != models.TransmissionAutomatic && transmission != models.TransmissionManual {
		return models.Vehicle{}, "transmission must be automatic or manual"
	}

	ac := strings.EqualFold(strings.TrimSpace(m.vehicleInputs[6].Value()), "yes")

	return models.Vehicle{
		Name:         name,
		Category:     category,
		PricePerDay:  price,
		Seats:        seats,
		Transmission: transmission,
		Fuel:         strings.TrimSpace(m.vehicleInputs[5].Value()),
		AC:           ac,
		Description:  strings.TrimSpace(m.vehicleInputs[7].Value()),
	}, ""
}

func (m mainLoopModel) viewVehicleForm() string {
	title := "NEW VEHICLE"
	if m.vehicleEditID != "" {
		title = "EDIT VEHICLE"
	}

	labels := []string{
		"Name        ",
		"Category    ",
		"Price/day   ",
		"Seats       ",
		"Transmission",
		"Fuel        ",
		"A/C         ",
		"Description ",
	}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label + " │ [" + m.vehicleInputs[i].View() + "]\n")
	}

	if m.vehicleSaving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m mainLoopModel) cmdSaveVehicle(editID string, fields models.Vehicle) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FleetService

	return func() tea.Msg {
		if editID == "" {
			_, err := svc.Create(ctx, fields)
			return vehicleSavedMsg{err: err}
		}

		patch := models.VehiclePatch{
			Name:         &fields.Name,
			Category:     &fields.Category,
			PricePerDay:  &fields.PricePerDay,
			Seats:        &fields.Seats,
			Transmission: &fields.Transmission,
			Fuel:         &fields.Fuel,
			AC:           &fields.AC,
			Description:  &fields.Description,
		}
		_, err := svc.Update(ctx, editID, patch)
		return vehicleSavedMsg{err: err}
	}
}
