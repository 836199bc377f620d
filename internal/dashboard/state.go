package dashboard

import (
	"html/template"
	"slices"
	"sync"

	"github.com/nikmy/flighthub/internal/models"
)

// State holds the last successful fetch per kind and what each container
// currently shows. Lists are replaced wholesale and handed out as copies.
type State struct {
	mu sync.RWMutex

	flights  []models.Flight
	airports []models.Airport
	airlines []models.Airline
	aircraft []models.Airplane

	containers map[string]template.HTML
	cacheInfo  string
}

func newState() *State {
	return &State{containers: make(map[string]template.HTML)}
}

func (s *State) Flights() []models.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.flights)
}

func (s *State) Airports() []models.Airport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.airports)
}

func (s *State) Airlines() []models.Airline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.airlines)
}

func (s *State) Aircraft() []models.Airplane {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.aircraft)
}

func (s *State) Container(id string) template.HTML {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.containers[id]
}

// Containers is a snapshot of every rendered container.
func (s *State) Containers() map[string]template.HTML {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]template.HTML, len(s.containers))
	for id, html := range s.containers {
		out[id] = html
	}
	return out
}

func (s *State) CacheInfo() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cacheInfo
}

func (s *State) setContainer(id string, html template.HTML) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.containers[id] = html
}

func (s *State) setCacheInfo(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cacheInfo = text
}

func (s *State) setFlights(rows []models.Flight, html template.HTML) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = rows
	s.containers[KindFlights.Container()] = html
}

func (s *State) setAirports(rows []models.Airport, html template.HTML) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.airports = rows
	s.containers[KindAirports.Container()] = html
}

func (s *State) setAirlines(rows []models.Airline, html template.HTML) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.airlines = rows
	s.containers[KindAirlines.Container()] = html
}

func (s *State) setAircraft(rows []models.Airplane, html template.HTML) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aircraft = rows
	s.containers[KindAircraft.Container()] = html
}
