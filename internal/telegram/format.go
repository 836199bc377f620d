package telegram

import (
	"fmt"
	"strings"

	"github.com/nikmy/flighthub/internal/dashboard"
	"github.com/nikmy/flighthub/internal/live"
	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/internal/view"
)

func rowsText[T any](kind dashboard.Kind, rows []T, limit int, line func(T) string) string {
	return listText(kind, kind.EmptyMessage(), rows, limit, line)
}

// shownText describes the result of a list operation over cached rows.
func shownText[T any](kind dashboard.Kind, rows []T, limit int, line func(T) string) string {
	return listText(kind, kind.NothingMessage(), rows, limit, line)
}

func listText[T any](kind dashboard.Kind, empty string, rows []T, limit int, line func(T) string) string {
	if len(rows) == 0 {
		return empty
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d", kind, len(rows))
	for i, row := range rows {
		if i == limit {
			fmt.Fprintf(&sb, "\n\n...and %d more", len(rows)-limit)
			break
		}
		sb.WriteString("\n\n")
		sb.WriteString(line(row))
	}
	return sb.String()
}

func flightText(f models.Flight) string {
	text := fmt.Sprintf("%s %s\n%s %s -> %s %s\nStatus: %s",
		orPlaceholder(f.Code()),
		f.Airline.Name.Or(view.Placeholder),
		f.Departure.Iata.Or(view.Placeholder),
		view.Clock(f.Departure.Scheduled),
		f.Arrival.Iata.Or(view.Placeholder),
		view.Clock(f.Arrival.Scheduled),
		f.FlightStatus.Or(view.Placeholder),
	)
	if f.Delayed() {
		text += fmt.Sprintf(", delayed %g min", f.DelayMinutes())
	}
	return text
}

func airportText(a models.Airport) string {
	return fmt.Sprintf("%s %s (%s)",
		a.IataCode.Or(view.Placeholder),
		a.AirportName.Or(view.Placeholder),
		a.CountryName.Or(view.Placeholder),
	)
}

func airlineText(a models.Airline) string {
	return fmt.Sprintf("%s %s (%s)",
		a.IataCode.Or(view.Placeholder),
		a.AirlineName.Or(view.Placeholder),
		a.CountryName.Or(view.Placeholder),
	)
}

func aircraftText(a models.Airplane) string {
	return fmt.Sprintf("%s %s, owner %s",
		a.RegistrationNumber.Or(view.Placeholder),
		a.ModelName.Or(view.Placeholder),
		a.PlaneOwner.Or(view.Placeholder),
	)
}

func liveText(snap live.Snapshot, limit int) string {
	if snap.Seq == 0 {
		return "No positions received yet"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Tracking %d aircraft, updated %s",
		len(snap.Markers), snap.At.UTC().Format("15:04:05 MST"))
	for i, m := range snap.Markers {
		if i == limit {
			fmt.Fprintf(&sb, "\n...and %d more", len(snap.Markers)-limit)
			break
		}
		fmt.Fprintf(&sb, "\n%s: %s", m.Label, strings.Join(m.Popup, ", "))
	}
	return sb.String()
}

func historyText(searches []models.Search, limit int) string {
	if len(searches) == 0 {
		return "No searches yet"
	}

	lines := make([]string, 0, min(len(searches), limit))
	for i, s := range searches {
		if i == limit {
			break
		}
		lines = append(lines, fmt.Sprintf("%s %s (%d results)",
			s.At.UTC().Format("2006-01-02 15:04"), s.Query, s.Results))
	}
	return strings.Join(lines, "\n")
}

func orPlaceholder(s string) string {
	if s == "" {
		return view.Placeholder
	}
	return s
}
