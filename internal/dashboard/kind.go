package dashboard

import "github.com/nikmy/flighthub/internal/view"

type Kind string

const (
	KindFlights  Kind = "flights"
	KindAirports Kind = "airports"
	KindAirlines Kind = "airlines"
	KindAircraft Kind = "aircraft"
)

var Kinds = [...]Kind{KindFlights, KindAirports, KindAirlines, KindAircraft}

func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Container is the id of the element the kind renders into.
func (k Kind) Container() string {
	switch k {
	case KindFlights:
		return view.ContainerFlights
	case KindAirports:
		return view.ContainerAirports
	case KindAirlines:
		return view.ContainerAirlines
	case KindAircraft:
		return view.ContainerAircraft
	}
	return ""
}

// EmptyMessage is shown when a fetch for the kind returns no rows.
func (k Kind) EmptyMessage() string {
	switch k {
	case KindFlights:
		return "No flights found. Try different search criteria."
	case KindAirports:
		return "No airport data available"
	case KindAirlines:
		return "No airline data available"
	case KindAircraft:
		return "No aircraft data available"
	}
	return "No data available"
}

// NothingMessage is shown when a list operation leaves no rows to show.
func (k Kind) NothingMessage() string {
	switch k {
	case KindFlights:
		return "No flights to display"
	case KindAirports:
		return "No airports to display"
	case KindAirlines:
		return "No airlines to display"
	case KindAircraft:
		return "No aircraft to display"
	}
	return "Nothing to display"
}
