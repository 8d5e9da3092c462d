package tui

import (
	"fmt"
	"strings"

	"github.com/palmcar/rentaldesk/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateReports(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.mode = modeCatalog
	case "e":
		return m, m.cmdExportBookings()
	case "x":
		return m, m.cmdExportFleet()
	}

	return m, nil
}

func (m mainLoopModel) viewReports() string {
	if m.loading {
		return renderPage("REPORTS", "Crunching numbers...", "esc: back")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n\n")
	}

	b.WriteString("Bookings\n")
	b.WriteString(fmt.Sprintf("  Confirmed  │ %d\n", m.report.Confirmed))
	b.WriteString(fmt.Sprintf("  Completed  │ %d\n", m.report.Completed))
	b.WriteString(fmt.Sprintf("  Cancelled  │ %d\n", m.report.Cancelled))
	b.WriteString("  Revenue    │ " + money(m.report.RevenueCompleted) + " (completed rentals)\n")

	b.WriteString("\nFleet by category\n")
	if len(m.report.FleetByCategory) == 0 {
		b.WriteString("  -\n")
	}
	for _, row := range m.report.FleetByCategory {
		b.WriteString(fmt.Sprintf("  %-10s │ %d\n", models.CategoryLabel(row.Category), row.Count))
	}

	return renderPage("REPORTS", strings.TrimRight(b.String(), "\n"), "x: export fleet │ e: export bookings │ esc: back")
}
