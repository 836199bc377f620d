package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/skypies/geo"

	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/pkg/errors"
	"github.com/nikmy/flighthub/pkg/logger"
)

const (
	pathFlights   = "/api/flights"
	pathAirports  = "/api/airports"
	pathAirlines  = "/api/airlines"
	pathAircraft  = "/api/aircraft"
	pathLive      = "/api/aircraft/live"
	pathLiveBox   = "/api/aircraft/live/box"
	pathCacheInfo = "/api/cache/info"
)

func New(cfg Config, log logger.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil {
		return nil, errors.WrapFail(err, "parse backend url")
	}

	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("backend url %q must be absolute", cfg.URL)
	}

	return &Client{
		base: base,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.With("backend_client"),
	}, nil
}

// Client talks to the FlightHub collaborator API. It never retries.
type Client struct {
	base *url.URL
	http *http.Client
	log  logger.Logger
}

func (c *Client) Flights(ctx context.Context, q FlightQuery) ([]models.Flight, error) {
	return fetchList[models.Flight](ctx, c, pathFlights, q.Values())
}

func (c *Client) Airports(ctx context.Context) ([]models.Airport, error) {
	return fetchList[models.Airport](ctx, c, pathAirports, nil)
}

func (c *Client) Airlines(ctx context.Context) ([]models.Airline, error) {
	return fetchList[models.Airline](ctx, c, pathAirlines, nil)
}

func (c *Client) Aircraft(ctx context.Context) ([]models.Airplane, error) {
	return fetchList[models.Airplane](ctx, c, pathAircraft, nil)
}

// LivePositions fetches current positions, scoped to box when it is not nil.
// A response without success=true and an aircraft list is ErrMalformed.
func (c *Client) LivePositions(ctx context.Context, box *geo.LatlongBox) ([]models.Position, error) {
	path, query := pathLive, url.Values(nil)
	if box != nil {
		path, query = pathLiveBox, boxValues(*box)
	}

	status, body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var env liveEnvelope
	err = json.Unmarshal(body, &env)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "decode %s (status %d): %s", path, status, err)
	}

	if !env.Success || env.Aircraft == nil {
		msg, _ := errorMessage(env.Error)
		if msg == "" {
			msg = env.Message.String()
		}
		return nil, errors.Wrapf(ErrMalformed, "%s (status %d): %s", path, status, msg)
	}

	return env.Aircraft, nil
}

// CacheInfo reads the collaborator's cache statistics. Non-success statuses
// are reported as ErrUnavailable.
func (c *Client) CacheInfo(ctx context.Context) (CacheInfo, error) {
	status, body, err := c.get(ctx, pathCacheInfo, nil)
	if err != nil {
		return CacheInfo{}, err
	}

	if !isSuccess(status) {
		return CacheInfo{}, errors.Wrapf(ErrUnavailable, "status %d", status)
	}

	var info CacheInfo
	err = json.Unmarshal(body, &info)
	if err != nil {
		return CacheInfo{}, errors.Wrap(ErrMalformed, err.Error())
	}

	return info, nil
}

func fetchList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	status, body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var env listEnvelope[T]
	decodeErr := json.Unmarshal(body, &env)

	if decodeErr == nil {
		if msg, failed := errorMessage(env.Error); failed {
			return nil, &EnvelopeError{Status: status, Message: msg}
		}
	}

	if !isSuccess(status) {
		return nil, &EnvelopeError{Status: status}
	}

	if decodeErr != nil {
		return nil, errors.Wrapf(ErrMalformed, "decode %s: %s", path, decodeErr)
	}

	return env.Data, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	u := *c.base
	u.Path += path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, errors.WrapFail(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Cause: errors.WrapFail(err, "read body")}
	}

	c.log.Debugf("GET %s -> %d (%d bytes)", u.Path, resp.StatusCode, len(body))
	return resp.StatusCode, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
