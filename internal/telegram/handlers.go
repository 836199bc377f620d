package telegram

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"github.com/vitaliy-ukiru/fsm-telebot/storages/memory"
	"gopkg.in/telebot.v3"

	"github.com/nikmy/flighthub/internal/backend"
	"github.com/nikmy/flighthub/internal/dashboard"
	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/pkg/errors"
)

const (
	initialState = fsm.DefaultState

	searchFlightState fsm.State = "searchFlight"
	searchFromState   fsm.State = "searchFrom"
	searchToState     fsm.State = "searchTo"
)

const (
	queryKey  = "query"
	skipInput = "-"
)

const usage = "" +
	"Available commands:\n" +
	"/search - search flights step by step\n" +
	"/flights - load current flights\n" +
	"/airports - load airports\n" +
	"/airlines - load airlines\n" +
	"/aircraft - load aircraft\n" +
	"/sort <departure|arrival|delay|airline|status> - sort loaded flights\n" +
	"/filter <all|delayed|status> - filter loaded flights\n" +
	"/find <kind> <text> - search loaded data\n" +
	"/live - live aircraft positions\n" +
	"/stats - backend cache statistics\n" +
	"/history - recent searches\n" +
	"/theme - toggle dashboard theme\n" +
	"/cancel - abort the current dialog"

var sortKeys = []string{
	dashboard.SortDeparture,
	dashboard.SortArrival,
	dashboard.SortDelay,
	dashboard.SortAirline,
	dashboard.SortStatus,
}

type handler func(c chat, s wizard) error

func (b *Bot) setupHandlers() {
	manager := fsm.NewManager(
		b.bot,
		nil,
		memory.NewStorage(),
		nil,
	)

	manager.Bind(telebot.OnText, initialState, b.handle(b.start))
	manager.Bind("/start", fsm.AnyState, b.handle(b.start))
	manager.Bind("/help", fsm.AnyState, b.handle(b.start))
	manager.Bind("/cancel", fsm.AnyState, b.handle(b.cancel))

	for _, kind := range dashboard.Kinds {
		manager.Bind("/"+string(kind), initialState, b.handle(b.load(kind)))
	}

	manager.Bind("/search", initialState, b.handle(b.startSearch))
	manager.Bind(telebot.OnText, searchFlightState, b.handle(b.searchReadFlight))
	manager.Bind(telebot.OnText, searchFromState, b.handle(b.searchReadFrom))
	manager.Bind(telebot.OnText, searchToState, b.handle(b.search))

	manager.Bind("/sort", initialState, b.handle(b.sort))
	manager.Bind("/filter", initialState, b.handle(b.filter))
	manager.Bind("/find", initialState, b.handle(b.find))

	manager.Bind("/live", initialState, b.handle(b.showLive))
	manager.Bind("/stats", initialState, b.handle(b.stats))
	manager.Bind("/history", initialState, b.handle(b.history))
	manager.Bind("/theme", initialState, b.handle(b.toggleTheme))
}

func (b *Bot) handle(h handler) func(telebot.Context, fsm.Context) error {
	return func(c telebot.Context, s fsm.Context) error {
		return h(c, s)
	}
}

func (b *Bot) setState(s wizard, target fsm.State) {
	err := s.Set(target)
	if err != nil {
		b.log.Warn(errors.WrapFailf(err, "set state to %q", target))
	}
}

func (b *Bot) final(c chat, s wizard, msg string, opts ...any) error {
	b.setState(s, initialState)
	return c.Send(msg, opts...)
}

func (b *Bot) fail(c chat, s wizard, err error) error {
	b.log.Error(err)
	return b.final(c, s, "Something went wrong")
}

func (b *Bot) start(c chat, s wizard) error {
	return b.final(c, s, usage)
}

func (b *Bot) cancel(c chat, s wizard) error {
	return b.final(c, s, "Cancelled")
}

func (b *Bot) load(kind dashboard.Kind) handler {
	return func(c chat, s wizard) error {
		out := b.dash.Load(b.ctx, kind)
		return b.final(c, s, b.outcomeText(out))
	}
}

func (b *Bot) startSearch(c chat, s wizard) error {
	err := s.Update(queryKey, backend.FlightQuery{})
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "reset search query"))
	}

	b.setState(s, searchFlightState)
	return c.Send("Enter flight IATA code, or " + skipInput + " to skip")
}

func (b *Bot) searchReadFlight(c chat, s wizard) error {
	return b.searchStep(c, s, searchFromState,
		"Enter departure airport IATA code, or "+skipInput+" to skip",
		func(q *backend.FlightQuery, v string) { q.FlightIata = v },
	)
}

func (b *Bot) searchReadFrom(c chat, s wizard) error {
	return b.searchStep(c, s, searchToState,
		"Enter arrival airport IATA code, or "+skipInput+" to skip",
		func(q *backend.FlightQuery, v string) { q.DepIata = v },
	)
}

func (b *Bot) searchStep(
	c chat,
	s wizard,
	next fsm.State,
	prompt string,
	set func(q *backend.FlightQuery, v string),
) error {
	var q backend.FlightQuery
	err := s.Get(queryKey, &q)
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "get search query"))
	}

	set(&q, readCode(c.Text()))

	err = s.Update(queryKey, q)
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "save search query"))
	}

	b.setState(s, next)
	return c.Send(prompt)
}

func (b *Bot) search(c chat, s wizard) error {
	var q backend.FlightQuery
	err := s.Get(queryKey, &q)
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "get search query"))
	}
	q.ArrIata = readCode(c.Text())

	out := b.dash.SearchFlights(b.ctx, q)
	return b.final(c, s, q.Describe()+"\n\n"+b.outcomeText(out))
}

func (b *Bot) sort(c chat, s wizard) error {
	args := c.Args()
	if len(args) != 1 || !slices.Contains(sortKeys, args[0]) {
		return b.final(c, s, "Usage: /sort <"+strings.Join(sortKeys, "|")+">")
	}

	flights := dashboard.SortFlights(b.cache.Flights(), args[0])
	return b.final(c, s, shownText(dashboard.KindFlights, flights, b.limit, flightText))
}

func (b *Bot) filter(c chat, s wizard) error {
	status := dashboard.FilterAll
	if args := c.Args(); len(args) > 0 {
		status = strings.ToLower(args[0])
	}

	flights := dashboard.FilterFlights(b.cache.Flights(), status)
	return b.final(c, s, shownText(dashboard.KindFlights, flights, b.limit, flightText))
}

func (b *Bot) find(c chat, s wizard) error {
	args := c.Args()
	if len(args) == 0 {
		return b.final(c, s, "Usage: /find <flights|airports|airlines|aircraft> <text>")
	}

	kind, ok := dashboard.ParseKind(strings.ToLower(args[0]))
	if !ok {
		return b.final(c, s, fmt.Sprintf("Unknown kind %q", args[0]))
	}
	query := strings.Join(args[1:], " ")

	switch kind {
	case dashboard.KindFlights:
		rows := dashboard.FindFlights(b.cache.Flights(), query)
		return b.final(c, s, shownText(kind, rows, b.limit, flightText))
	case dashboard.KindAirports:
		rows := dashboard.FindAirports(b.cache.Airports(), query)
		return b.final(c, s, shownText(kind, rows, b.limit, airportText))
	case dashboard.KindAirlines:
		rows := dashboard.FindAirlines(b.cache.Airlines(), query)
		return b.final(c, s, shownText(kind, rows, b.limit, airlineText))
	default:
		rows := dashboard.FindAircraft(b.cache.Aircraft(), query)
		return b.final(c, s, shownText(kind, rows, b.limit, aircraftText))
	}
}

func (b *Bot) showLive(c chat, s wizard) error {
	if b.live == nil {
		return b.final(c, s, "Live tracking is disabled")
	}
	return b.final(c, s, liveText(b.live.Snapshot(), b.limit))
}

func (b *Bot) stats(c chat, s wizard) error {
	b.dash.RefreshCacheInfo(b.ctx)

	info := b.cache.CacheInfo()
	if info == "" {
		info = "Cache statistics are not available"
	}
	return b.final(c, s, info)
}

func (b *Bot) history(c chat, s wizard) error {
	searches, err := b.dash.History(b.ctx)
	if err != nil {
		return b.fail(c, s, err)
	}
	return b.final(c, s, historyText(searches, b.limit))
}

func (b *Bot) toggleTheme(c chat, s wizard) error {
	theme, err := b.theme.Toggle()
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "toggle theme"))
	}
	return b.final(c, s, "Theme switched to "+string(theme))
}

// outcomeText describes a fetch using the rows it returned.
func (b *Bot) outcomeText(out dashboard.Outcome) string {
	if out.Failed() {
		return "Error: " + out.Err
	}

	switch rows := out.Fetched.(type) {
	case []models.Flight:
		return rowsText(out.Kind, rows, b.limit, flightText)
	case []models.Airport:
		return rowsText(out.Kind, rows, b.limit, airportText)
	case []models.Airline:
		return rowsText(out.Kind, rows, b.limit, airlineText)
	case []models.Airplane:
		return rowsText(out.Kind, rows, b.limit, aircraftText)
	}
	return out.Kind.EmptyMessage()
}

func readCode(text string) string {
	text = strings.TrimSpace(text)
	if text == skipInput {
		return ""
	}
	return strings.ToUpper(text)
}
