package backend

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/skypies/geo"
)

// FlightQuery holds the optional flight search filters. Empty fields are not
// sent.
type FlightQuery struct {
	FlightIata  string
	DepIata     string
	ArrIata     string
	AirlineIata string
	Status      string
}

func (q FlightQuery) Values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			v.Set(key, value)
		}
	}

	set("flight_iata", q.FlightIata)
	set("dep_iata", q.DepIata)
	set("arr_iata", q.ArrIata)
	set("airline_iata", q.AirlineIata)
	set("flight_status", q.Status)
	return v
}

// Describe renders the query for search history, e.g.
// "Flight: AA1 | From: JFK".
func (q FlightQuery) Describe() string {
	var parts []string
	add := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			parts = append(parts, label+": "+value)
		}
	}

	add("Flight", q.FlightIata)
	add("From", q.DepIata)
	add("To", q.ArrIata)
	add("Airline", q.AirlineIata)
	add("Status", q.Status)

	if len(parts) == 0 {
		return "Flight Search"
	}
	return strings.Join(parts, " | ")
}

func boxValues(box geo.LatlongBox) url.Values {
	f := func(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }
	return url.Values{
		"lamin": {f(box.SW.Lat)},
		"lomin": {f(box.SW.Long)},
		"lamax": {f(box.NE.Lat)},
		"lomax": {f(box.NE.Long)},
	}
}
