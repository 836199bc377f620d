package models

import "time"

type Flight struct {
	FlightDate   Text `json:"flight_date"`
	FlightStatus Text `json:"flight_status"`

	Departure Endpoint `json:"departure"`
	Arrival   Endpoint `json:"arrival"`

	Airline struct {
		Name Text `json:"name"`
		Iata Text `json:"iata"`
		Icao Text `json:"icao"`
	} `json:"airline"`

	Flight struct {
		Number Text `json:"number"`
		Iata   Text `json:"iata"`
		Icao   Text `json:"icao"`
	} `json:"flight"`
}

// Endpoint is one end of a flight: where it leaves from or lands at.
type Endpoint struct {
	Airport  Text `json:"airport"`
	Timezone Text `json:"timezone"`
	Iata     Text `json:"iata"`
	Icao     Text `json:"icao"`
	Terminal Text `json:"terminal"`
	Gate     Text `json:"gate"`

	Delay Number `json:"delay"`

	Scheduled Text `json:"scheduled"`
	Estimated Text `json:"estimated"`
	Actual    Text `json:"actual"`
}

// DelayMinutes is the departure delay, 0 when unknown.
func (f Flight) DelayMinutes() float64 {
	return f.Departure.Delay.OrZero()
}

func (f Flight) Delayed() bool {
	return f.DelayMinutes() > 0
}

// Code is the flight's IATA designator, falling back to the bare number.
func (f Flight) Code() string {
	return f.Flight.Iata.Or(f.Flight.Number.Or(""))
}

// ScheduledTime parses an endpoint's scheduled timestamp.
func (e Endpoint) ScheduledTime() (time.Time, bool) {
	return ParseTimestamp(string(e.Scheduled))
}

var timestampLayouts = [...]string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func ParseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
