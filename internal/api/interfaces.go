package api

import (
	"context"
	"html/template"

	"github.com/nikmy/flighthub/internal/backend"
	"github.com/nikmy/flighthub/internal/dashboard"
	"github.com/nikmy/flighthub/internal/live"
	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/internal/settings"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type dashboardApi interface {
	State() *dashboard.State

	SearchFlights(ctx context.Context, q backend.FlightQuery) dashboard.Outcome
	Load(ctx context.Context, kind dashboard.Kind) dashboard.Outcome

	SortFlights(by string) template.HTML
	FilterFlights(status string) template.HTML
	Find(kind dashboard.Kind, query string) template.HTML

	History(ctx context.Context) ([]models.Search, error)
}

type themeStore interface {
	Theme() settings.Theme
	Toggle() (settings.Theme, error)
}

type markerSource interface {
	Snapshot() live.Snapshot
}
