package models

import (
	"encoding/json"
	"strings"

	"github.com/skypies/geo"
)

// Position is one live aircraft state vector. Lat and Lng are nil when the
// transponder reported no fix.
type Position struct {
	Icao24   string   `json:"icao24"`
	Callsign string   `json:"callsign"`
	Country  string   `json:"country"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	Altitude Number   `json:"altitude"`
	Velocity Number   `json:"velocity"`
}

// wirePosition accepts both spellings used by the live endpoints.
type wirePosition struct {
	Icao24        Text     `json:"icao24"`
	Callsign      Text     `json:"callsign"`
	Country       Text     `json:"country"`
	OriginCountry Text     `json:"origin_country"`
	Lat           *float64 `json:"lat"`
	Latitude      *float64 `json:"latitude"`
	Lng           *float64 `json:"lng"`
	Lon           *float64 `json:"lon"`
	Longitude     *float64 `json:"longitude"`
	Altitude      Number   `json:"altitude"`
	Velocity      Number   `json:"velocity"`
}

func (p *Position) UnmarshalJSON(b []byte) error {
	var w wirePosition
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*p = Position{
		Icao24:   strings.TrimSpace(string(w.Icao24)),
		Callsign: strings.TrimSpace(string(w.Callsign)),
		Country:  w.Country.Or(string(w.OriginCountry)),
		Lat:      firstNonNil(w.Lat, w.Latitude),
		Lng:      firstNonNil(w.Lng, w.Lon, w.Longitude),
		Altitude: w.Altitude,
		Velocity: w.Velocity,
	}
	return nil
}

func firstNonNil(vs ...*float64) *float64 {
	for _, v := range vs {
		if v != nil {
			return v
		}
	}
	return nil
}

// Located reports whether both coordinates are present.
func (p Position) Located() bool {
	return p.Lat != nil && p.Lng != nil
}

// Latlong is only meaningful when Located is true.
func (p Position) Latlong() geo.Latlong {
	if !p.Located() {
		return geo.Latlong{}
	}
	return geo.Latlong{Lat: *p.Lat, Long: *p.Lng}
}

// Label is the callsign, or the transponder address when there is none.
func (p Position) Label() string {
	if p.Callsign != "" {
		return p.Callsign
	}
	return p.Icao24
}
