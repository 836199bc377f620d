package view

import "html/template"

// Container ids, shared by the page template and the dashboard state.
const (
	ContainerFlights   = "flights-results"
	ContainerAirports  = "airports-results"
	ContainerAirlines  = "airlines-results"
	ContainerAircraft  = "aircraft-results"
	ContainerCacheInfo = "cache-info"
	ContainerMap       = "aircraft-map"
)

type PageData struct {
	Dark       bool
	CacheInfo  string
	Containers map[string]template.HTML

	MapEnabled bool
	PushURL    string
}
