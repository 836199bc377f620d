package dashboard

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nikmy/flighthub/internal/models"
)

// Sort keys understood by SortFlights.
const (
	SortDeparture = "departure"
	SortArrival   = "arrival"
	SortDelay     = "delay"
	SortAirline   = "airline"
	SortStatus    = "status"
)

// Filter sentinels understood by FilterFlights.
const (
	FilterAll     = "all"
	FilterDelayed = "delayed"
)

// SortFlights returns a stably sorted copy. Unknown keys keep the order.
func SortFlights(flights []models.Flight, by string) []models.Flight {
	out := slices.Clone(flights)

	switch by {
	case SortDeparture:
		slices.SortStableFunc(out, func(a, b models.Flight) int {
			return compareTimes(a.Departure, b.Departure)
		})
	case SortArrival:
		slices.SortStableFunc(out, func(a, b models.Flight) int {
			return compareTimes(a.Arrival, b.Arrival)
		})
	case SortDelay:
		slices.SortStableFunc(out, func(a, b models.Flight) int {
			return cmp.Compare(b.DelayMinutes(), a.DelayMinutes())
		})
	case SortAirline:
		c := newCollator()
		slices.SortStableFunc(out, func(a, b models.Flight) int {
			return c.CompareString(string(a.Airline.Name), string(b.Airline.Name))
		})
	case SortStatus:
		c := newCollator()
		slices.SortStableFunc(out, func(a, b models.Flight) int {
			return c.CompareString(string(a.FlightStatus), string(b.FlightStatus))
		})
	}

	return out
}

// FilterFlights keeps flights with the given status. "all" and "" keep
// everything, "delayed" keeps flights with a positive departure delay.
func FilterFlights(flights []models.Flight, status string) []models.Flight {
	switch status {
	case FilterAll, "":
		return slices.Clone(flights)
	case FilterDelayed:
		return keep(flights, models.Flight.Delayed)
	}

	return keep(flights, func(f models.Flight) bool {
		return string(f.FlightStatus) == status
	})
}

func FindFlights(flights []models.Flight, query string) []models.Flight {
	return find(flights, query, func(f models.Flight) []models.Text {
		return []models.Text{f.Flight.Iata, f.Airline.Name, f.Departure.Airport, f.Arrival.Airport}
	})
}

func FindAirports(airports []models.Airport, query string) []models.Airport {
	return find(airports, query, func(a models.Airport) []models.Text {
		return []models.Text{a.AirportName, a.IataCode, a.CountryName}
	})
}

func FindAirlines(airlines []models.Airline, query string) []models.Airline {
	return find(airlines, query, func(a models.Airline) []models.Text {
		return []models.Text{a.AirlineName, a.IataCode, a.CountryName}
	})
}

func FindAircraft(aircraft []models.Airplane, query string) []models.Airplane {
	return find(aircraft, query, func(a models.Airplane) []models.Text {
		return []models.Text{a.ModelName, a.RegistrationNumber, a.PlaneOwner}
	})
}

// Collators are not safe for concurrent use, so every sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// compareTimes orders by scheduled time, missing or unparseable last.
func compareTimes(a, b models.Endpoint) int {
	ta, okA := a.ScheduledTime()
	tb, okB := b.ScheduledTime()

	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}

func keep[T any](rows []T, pred func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if pred(row) {
			out = append(out, row)
		}
	}
	return out
}

func find[T any](rows []T, query string, fields func(T) []models.Text) []T {
	query = strings.ToLower(query)
	if query == "" {
		return slices.Clone(rows)
	}

	return keep(rows, func(row T) bool {
		for _, field := range fields(row) {
			if strings.Contains(strings.ToLower(string(field)), query) {
				return true
			}
		}
		return false
	})
}
