package cli

import (
	"fmt"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/app/services/core/dashboard"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

func printView(w io.Writer, view dashboard.View, asJSON bool, render func(io.Writer, dashboard.View)) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(view)
	}
	render(w, view)
	return nil
}

func renderDay(w io.Writer, view dashboard.View) {
	fmt.Fprintln(w, view.Texts.ScheduledHours)

	header := []string{view.SelectedDateLabel, view.SelectedWeekdayLabel}
	if view.IsToday {
		header = append([]string{view.Texts.Today}, header...)
	}
	fmt.Fprintln(w, strings.Join(header, " | "))

	if view.AppointmentsFailed {
		fmt.Fprintln(w, view.Texts.ScheduleFailed)
	}

	if view.ShowNextAppointment && view.NextAppointment != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s: %s %s\n", view.Texts.NextAppointment, view.NextAppointment.HourFormatted, view.NextAppointment.Client.Name)
	}

	renderPeriod(w, view.Texts.Morning, view.Morning, view.Texts.NoAppointments)
	renderPeriod(w, view.Texts.Afternoon, view.Afternoon, view.Texts.NoAppointments)
}

func renderPeriod(w io.Writer, title string, appointments []models.Appointment, empty string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	if len(appointments) == 0 {
		fmt.Fprintf(w, "  %s\n", empty)
		return
	}
	for _, appointment := range appointments {
		fmt.Fprintf(w, "  %s  %s\n", appointment.HourFormatted, appointment.Client.Name)
	}
}

// renderCalendar prints the month grid. Selected days are bracketed and
// disabled days parenthesized.
func renderCalendar(w io.Writer, view dashboard.View) {
	calendar := view.Calendar
	fmt.Fprintln(w, calendar.Caption)

	if view.AvailabilityFailed {
		fmt.Fprintln(w, view.Texts.CalendarFailed)
	}

	for _, weekday := range calendar.Weekdays {
		fmt.Fprintf(w, " %2s ", weekday)
	}
	fmt.Fprintln(w)

	for _, week := range calendar.Weeks {
		for _, cell := range week.Days {
			fmt.Fprint(w, formatCell(cell))
		}
		fmt.Fprintln(w)
	}
}

func formatCell(cell dashboard.DayCell) string {
	switch {
	case !cell.InMonth:
		return "    "
	case cell.Selected:
		return fmt.Sprintf("[%2d]", cell.Day)
	case cell.Disabled || !cell.Available:
		return fmt.Sprintf("(%2d)", cell.Day)
	default:
		return fmt.Sprintf(" %2d ", cell.Day)
	}
}
