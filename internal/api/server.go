package api

import (
	"bytes"
	"context"
	"embed"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/nikmy/flighthub/internal/backend"
	"github.com/nikmy/flighthub/internal/dashboard"
	"github.com/nikmy/flighthub/internal/live"
	"github.com/nikmy/flighthub/internal/report"
	"github.com/nikmy/flighthub/internal/view"
	"github.com/nikmy/flighthub/pkg/errors"
	"github.com/nikmy/flighthub/pkg/logger"
)

const (
	headerServedBy = "X-Served-By"

	mimeGeoJSON = "application/geo+json"
	mimePDF     = "application/pdf"

	reportTitle = "FlightHub flights"
)

//go:embed static
var staticFS embed.FS

// NewServer builds the dashboard server. markers may be nil when the live
// map is disabled.
func NewServer(
	cfg Config,
	log logger.Logger,
	dash dashboardApi,
	theme themeStore,
	markers markerSource,
	render *view.Renderer,
) Server {
	return newServer(cfg, log, dash, theme, markers, render)
}

func newServer(
	cfg Config,
	log logger.Logger,
	dash dashboardApi,
	theme themeStore,
	markers markerSource,
	render *view.Renderer,
) *server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodGet, fiber.MethodHead, fiber.MethodPost},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).SendString(fe.Message)
		}

		reqID := c.GetRespHeader(fiber.HeaderXRequestID)
		serveLog.Warn(errors.WrapFailf(err, "handle http request %s", reqID))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	host, err := os.Hostname()
	if err != nil {
		serveLog.Warn(errors.WrapFail(err, "get host name"))
		host = "unknown"
	}

	s := &server{
		dash:    dash,
		theme:   theme,
		markers: markers,
		render:  render,
		pushURL: cfg.PushURL,
		host:    host,
		http:    fiber.New(fiberCfg),
		addr:    cfg.HTTP.Addr,
		log:     serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	dash    dashboardApi
	theme   themeStore
	markers markerSource
	render  *view.Renderer

	pushURL string
	host    string

	http *fiber.App
	addr string
	log  logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	if err != nil {
		return errors.WrapFail(err, "shutdown http server")
	}
	return nil
}

func (s *server) setupRoutes() {
	s.http.Use(requestid.New())
	s.http.Use(s.servedBy)
	s.http.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(staticFS),
		PathPrefix: "static",
	}))

	s.http.Get("/", s.handlePage)
	s.http.Get("/fragments/:kind", s.handleFragment)
	s.http.Get("/cache-info", s.handleCacheInfo)

	s.http.Get("/flights/search", s.handleSearch)
	s.http.Get("/flights/sort", s.handleSort)
	s.http.Get("/flights/filter", s.handleFilter)
	s.http.Get("/flights/export.pdf", s.handleExport)
	s.http.Get("/:kind/load", s.handleLoad)
	s.http.Get("/:kind/find", s.handleFind)

	s.http.Get("/map/markers.geojson", s.handleMarkers)

	s.http.Get("/theme", s.handleTheme)
	s.http.Post("/theme/toggle", s.handleToggleTheme)

	s.http.Get("/history", s.handleHistory)
}

func (s *server) servedBy(c *fiber.Ctx) error {
	c.Set(headerServedBy, s.host)
	return c.Next()
}

func (s *server) handlePage(c *fiber.Ctx) error {
	state := s.dash.State()

	page, err := s.render.Page(view.PageData{
		Dark:       s.theme.Theme().Dark(),
		CacheInfo:  state.CacheInfo(),
		Containers: state.Containers(),
		MapEnabled: s.markers != nil,
		PushURL:    s.pushURL,
	})
	if err != nil {
		return errors.WrapFail(err, "render page")
	}

	c.Type("html", "utf-8")
	return c.Send(page)
}

func (s *server) handleFragment(c *fiber.Ctx) error {
	kind, err := s.getKindOrErr(c)
	if err != nil {
		return err
	}
	return s.sendHTML(c, string(s.dash.State().Container(kind.Container())))
}

func (s *server) handleCacheInfo(c *fiber.Ctx) error {
	return c.SendString(s.dash.State().CacheInfo())
}

func (s *server) handleSearch(c *fiber.Ctx) error {
	q := backend.FlightQuery{
		FlightIata:  c.Query("flight_iata"),
		DepIata:     c.Query("dep_iata"),
		ArrIata:     c.Query("arr_iata"),
		AirlineIata: c.Query("airline_iata"),
		Status:      c.Query("flight_status"),
	}

	out := s.dash.SearchFlights(c.Context(), q)
	return s.sendHTML(c, string(out.HTML))
}

func (s *server) handleLoad(c *fiber.Ctx) error {
	kind, err := s.getKindOrErr(c)
	if err != nil {
		return err
	}

	out := s.dash.Load(c.Context(), kind)
	return s.sendHTML(c, string(out.HTML))
}

func (s *server) handleSort(c *fiber.Ctx) error {
	return s.sendHTML(c, string(s.dash.SortFlights(c.Query("by"))))
}

func (s *server) handleFilter(c *fiber.Ctx) error {
	return s.sendHTML(c, string(s.dash.FilterFlights(c.Query("status", dashboard.FilterAll))))
}

func (s *server) handleFind(c *fiber.Ctx) error {
	kind, err := s.getKindOrErr(c)
	if err != nil {
		return err
	}
	return s.sendHTML(c, string(s.dash.Find(kind, c.Query("q"))))
}

func (s *server) handleMarkers(c *fiber.Ctx) error {
	var markers []live.Marker
	if s.markers != nil {
		markers = s.markers.Snapshot().Markers
	}

	body, err := live.FeatureCollection(markers).MarshalJSON()
	if err != nil {
		return errors.WrapFail(err, "marshal markers")
	}

	c.Set(fiber.HeaderContentType, mimeGeoJSON)
	return c.Send(body)
}

func (s *server) handleTheme(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"theme": s.theme.Theme()})
}

func (s *server) handleToggleTheme(c *fiber.Ctx) error {
	theme, err := s.theme.Toggle()
	if err != nil {
		return errors.WrapFail(err, "toggle theme")
	}
	return c.JSON(fiber.Map{"theme": theme})
}

func (s *server) handleHistory(c *fiber.Ctx) error {
	searches, err := s.dash.History(c.Context())
	if err != nil {
		return errors.WrapFail(err, "list history")
	}
	if searches == nil {
		return c.JSON([]any{})
	}
	return c.JSON(searches)
}

func (s *server) handleExport(c *fiber.Ctx) error {
	var buf bytes.Buffer
	err := report.Flights(&buf, reportTitle, s.dash.State().Flights(), time.Now())
	if err != nil {
		return errors.WrapFail(err, "build flights report")
	}

	c.Set(fiber.HeaderContentType, mimePDF)
	c.Attachment("flights.pdf")
	return c.Send(buf.Bytes())
}

func (s *server) sendHTML(c *fiber.Ctx, html string) error {
	c.Type("html", "utf-8")
	return c.SendString(html)
}

func (s *server) getKindOrErr(c *fiber.Ctx) (dashboard.Kind, error) {
	raw := strings.ToLower(c.Params("kind"))
	kind, ok := dashboard.ParseKind(raw)
	if !ok {
		return "", fiber.NewError(http.StatusNotFound, "unknown kind \""+raw+"\"")
	}
	return kind, nil
}
