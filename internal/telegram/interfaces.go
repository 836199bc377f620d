package telegram

import (
	"context"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"gopkg.in/telebot.v3"

	"github.com/nikmy/flighthub/internal/backend"
	"github.com/nikmy/flighthub/internal/dashboard"
	"github.com/nikmy/flighthub/internal/live"
	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/internal/settings"
)

type dashboardApi interface {
	SearchFlights(ctx context.Context, q backend.FlightQuery) dashboard.Outcome
	Load(ctx context.Context, kind dashboard.Kind) dashboard.Outcome
	RefreshCacheInfo(ctx context.Context)
	History(ctx context.Context) ([]models.Search, error)
}

type cacheView interface {
	Flights() []models.Flight
	Airports() []models.Airport
	Airlines() []models.Airline
	Aircraft() []models.Airplane
	CacheInfo() string
}

type liveApi interface {
	Snapshot() live.Snapshot
}

type themeApi interface {
	Toggle() (settings.Theme, error)
}

// chat is the part of telebot.Context the handlers use.
type chat interface {
	Text() string
	Args() []string
	Send(what interface{}, opts ...interface{}) error
}

// wizard is the part of fsm.Context the handlers use.
type wizard interface {
	Set(state fsm.State) error
	Get(key string, to interface{}) error
	Update(key string, data interface{}) error
}

var (
	_ chat   = telebot.Context(nil)
	_ wizard = fsm.Context(nil)
)
