package dashboard

import (
	"context"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/nikmy/flighthub/internal/backend"
	"github.com/nikmy/flighthub/internal/metrics"
	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/internal/view"
	"github.com/nikmy/flighthub/pkg/errors"
	"github.com/nikmy/flighthub/pkg/logger"
)

// HistoryLimit is how many recent searches History returns.
const HistoryLimit = 50

// New builds a dashboard with empty containers. history may be nil, in which
// case searches are not recorded.
func New(
	client backendClient,
	render *view.Renderer,
	history historyRepo,
	obs observer,
	log logger.Logger,
) *Dashboard {
	return &Dashboard{
		client:  client,
		render:  render,
		history: history,
		obs:     obs,
		log:     log.With("dashboard"),
		state:   newState(),
		now:     time.Now,
	}
}

type Dashboard struct {
	client  backendClient
	render  *view.Renderer
	history historyRepo
	obs     observer
	log     logger.Logger

	state *State
	now   func() time.Time
}

// Outcome is the result of one fetch: either rows (possibly zero) or a
// user-visible failure message. Fetched holds the fetched slice
// ([]models.Flight, []models.Airport, ...) and is nil on failure.
type Outcome struct {
	Kind    Kind
	Rows    int
	Err     string
	HTML    template.HTML
	Fetched any
}

func (o Outcome) Failed() bool {
	return o.Err != ""
}

func (d *Dashboard) State() *State {
	return d.state
}

func (d *Dashboard) SearchFlights(ctx context.Context, q backend.FlightQuery) Outcome {
	rows, err := d.client.Flights(ctx, q)
	out := fetched(d, KindFlights, rows, err, d.render.Flights, d.state.setFlights)
	if !out.Failed() {
		d.record(ctx, q, out.Rows)
	}

	d.RefreshCacheInfo(ctx)
	return out
}

func (d *Dashboard) LoadAirports(ctx context.Context) Outcome {
	rows, err := d.client.Airports(ctx)
	out := fetched(d, KindAirports, rows, err, d.render.Airports, d.state.setAirports)
	d.RefreshCacheInfo(ctx)
	return out
}

func (d *Dashboard) LoadAirlines(ctx context.Context) Outcome {
	rows, err := d.client.Airlines(ctx)
	out := fetched(d, KindAirlines, rows, err, d.render.Airlines, d.state.setAirlines)
	d.RefreshCacheInfo(ctx)
	return out
}

func (d *Dashboard) LoadAircraft(ctx context.Context) Outcome {
	rows, err := d.client.Aircraft(ctx)
	out := fetched(d, KindAircraft, rows, err, d.render.Aircraft, d.state.setAircraft)
	d.RefreshCacheInfo(ctx)
	return out
}

// Load runs the pipeline for kind. Flights are loaded without filters.
func (d *Dashboard) Load(ctx context.Context, kind Kind) Outcome {
	switch kind {
	case KindFlights:
		return d.SearchFlights(ctx, backend.FlightQuery{})
	case KindAirports:
		return d.LoadAirports(ctx)
	case KindAirlines:
		return d.LoadAirlines(ctx)
	case KindAircraft:
		return d.LoadAircraft(ctx)
	}
	return Outcome{Kind: kind, Err: fmt.Sprintf("unknown kind %q", kind)}
}

func (d *Dashboard) SortFlights(by string) template.HTML {
	return d.show(KindFlights, present(d, KindFlights, KindFlights.NothingMessage(), SortFlights(d.state.Flights(), by), d.render.Flights))
}

func (d *Dashboard) FilterFlights(status string) template.HTML {
	return d.show(KindFlights, present(d, KindFlights, KindFlights.NothingMessage(), FilterFlights(d.state.Flights(), status), d.render.Flights))
}

// Find runs free-text search over the cached list of kind.
func (d *Dashboard) Find(kind Kind, query string) template.HTML {
	var html template.HTML
	switch kind {
	case KindFlights:
		html = present(d, kind, kind.NothingMessage(), FindFlights(d.state.Flights(), query), d.render.Flights)
	case KindAirports:
		html = present(d, kind, kind.NothingMessage(), FindAirports(d.state.Airports(), query), d.render.Airports)
	case KindAirlines:
		html = present(d, kind, kind.NothingMessage(), FindAirlines(d.state.Airlines(), query), d.render.Airlines)
	case KindAircraft:
		html = present(d, kind, kind.NothingMessage(), FindAircraft(d.state.Aircraft(), query), d.render.Aircraft)
	default:
		return d.render.Error(fmt.Sprintf("unknown kind %q", kind))
	}
	return d.show(kind, html)
}

// RefreshCacheInfo updates the cache statistics indicator. Failures are
// logged and leave the indicator as it was.
func (d *Dashboard) RefreshCacheInfo(ctx context.Context) {
	info, err := d.client.CacheInfo(ctx)
	switch {
	case errors.Is(err, backend.ErrUnavailable):
		d.log.Warnf("cache info feature unavailable: %s", err)
		d.obs.ObserveCacheInfo("unavailable")
	case err != nil:
		d.log.Warnf("cache info refresh failed: %s", err)
		d.obs.ObserveCacheInfo("failed")
	default:
		d.state.setCacheInfo(FormatCacheInfo(info))
		d.obs.ObserveCacheInfo("ok")
	}
}

// History lists recent flight searches, newest first.
func (d *Dashboard) History(ctx context.Context) ([]models.Search, error) {
	if d.history == nil {
		return nil, nil
	}

	searches, err := d.history.Recent(ctx, HistoryLimit)
	if err != nil {
		return nil, errors.WrapFail(err, "list search history")
	}
	return searches, nil
}

func FormatCacheInfo(info backend.CacheInfo) string {
	return fmt.Sprintf("Cached Items: %s | API Calls Made: %s",
		formatCount(info.TotalCachedItems),
		formatCount(info.APICallsMade),
	)
}

func formatCount(n models.Number) string {
	return strconv.FormatFloat(n.OrZero(), 'f', -1, 64)
}

// FailureMessage is the text shown after "Error:" for a failed fetch.
func FailureMessage(kind Kind, err error) string {
	var transport *backend.TransportError
	if errors.As(err, &transport) {
		return "Network error: " + transport.Error()
	}

	var envelope *backend.EnvelopeError
	if errors.As(err, &envelope) && envelope.Message != "" {
		return envelope.Message
	}

	return "Failed to fetch " + string(kind)
}

func (d *Dashboard) show(kind Kind, html template.HTML) template.HTML {
	d.state.setContainer(kind.Container(), html)
	return html
}

func (d *Dashboard) record(ctx context.Context, q backend.FlightQuery, results int) {
	if d.history == nil {
		return
	}

	err := d.history.Add(ctx, models.Search{
		Kind:    string(KindFlights),
		Query:   q.Describe(),
		Results: results,
		At:      d.now(),
	})
	if err != nil {
		d.log.Warn(errors.WrapFail(err, "record search"))
	}
}

// fetched applies one fetch result to the state and renders it. A failure
// drops the cached list for kind.
func fetched[T any](
	d *Dashboard,
	kind Kind,
	rows []T,
	err error,
	render func([]T) (template.HTML, error),
	store func([]T, template.HTML),
) Outcome {
	if err != nil {
		msg := FailureMessage(kind, err)
		d.log.Warnf("fetch %s: %s", kind, err)

		html := d.render.Error(msg)
		store(nil, html)
		d.obs.ObserveFetch(string(kind), metrics.OutcomeError)
		return Outcome{Kind: kind, Err: msg, HTML: html}
	}

	outcome := metrics.OutcomeRows
	if len(rows) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	d.obs.ObserveFetch(string(kind), outcome)

	html := present(d, kind, kind.EmptyMessage(), rows, render)
	store(rows, html)
	return Outcome{Kind: kind, Rows: len(rows), HTML: html, Fetched: rows}
}

// present renders rows, or the empty message when there are none.
func present[T any](d *Dashboard, kind Kind, empty string, rows []T, render func([]T) (template.HTML, error)) template.HTML {
	if len(rows) == 0 {
		return d.render.Empty(empty)
	}

	html, err := render(rows)
	if err != nil {
		d.log.Error(errors.WrapFailf(err, "render %s", kind))
		return d.render.Error("Failed to render " + string(kind))
	}
	return html
}
