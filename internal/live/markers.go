package live

import (
	"strconv"

	geojson "github.com/paulmach/go.geojson"
	"github.com/skypies/geo"

	"github.com/nikmy/flighthub/internal/models"
)

type Marker struct {
	ID       string
	Label    string
	Position geo.Latlong
	Popup    []string
}

// BuildMarkers makes one marker per located position, in order.
func BuildMarkers(positions []models.Position) []Marker {
	markers := make([]Marker, 0, len(positions))
	for _, p := range positions {
		if !p.Located() {
			continue
		}

		markers = append(markers, Marker{
			ID:       p.Icao24,
			Label:    p.Label(),
			Position: p.Latlong(),
			Popup: []string{
				"Country: " + models.Text(p.Country).Or("N/A"),
				"Altitude: " + formatFloat(p.Altitude.OrZero()) + " m",
				"Velocity: " + formatFloat(p.Velocity.OrZero()) + " m/s",
			},
		})
	}
	return markers
}

// FeatureCollection renders markers as GeoJSON points. Coordinates are in
// GeoJSON order, longitude first.
func FeatureCollection(markers []Marker) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, m := range markers {
		f := geojson.NewPointFeature([]float64{m.Position.Long, m.Position.Lat})
		f.ID = m.ID
		f.SetProperty("label", m.Label)
		f.SetProperty("popup", m.Popup)
		fc.AddFeature(f)
	}
	return fc
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
