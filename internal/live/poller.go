package live

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skypies/geo"

	"github.com/nikmy/flighthub/internal/metrics"
	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/pkg/errors"
	"github.com/nikmy/flighthub/pkg/logger"
	"github.com/nikmy/flighthub/pkg/tools/await"
)

var ErrStarted = errors.Error("poller already started")

type positionSource interface {
	LivePositions(ctx context.Context, box *geo.LatlongBox) ([]models.Position, error)
}

type observer interface {
	ObserveTick(result string, markers int)
}

// Sink receives every applied snapshot, in sequence order.
type Sink interface {
	Publish(ctx context.Context, snap Snapshot) error
}

// Snapshot is the position set of one applied tick and its markers.
type Snapshot struct {
	Seq       uint64
	At        time.Time
	Positions []models.Position
	Markers   []Marker
}

func NewPoller(
	src positionSource,
	cfg Config,
	obs observer,
	log logger.Logger,
	sinks ...Sink,
) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Poller{
		src:      src,
		box:      cfg.Box.LatlongBox(),
		interval: interval,
		obs:      obs,
		sinks:    sinks,
		log:      log.With("live_poller"),
		now:      time.Now,
	}
}

// Poller fetches live positions on a fixed schedule. Ticks may overlap; a
// response is applied only if no later-issued request has been applied.
type Poller struct {
	src      positionSource
	box      *geo.LatlongBox
	interval time.Duration
	obs      observer
	sinks    []Sink
	log      logger.Logger
	now      func() time.Time

	issued atomic.Uint64

	mu      sync.RWMutex
	applied uint64
	snap    Snapshot

	pubMu     sync.Mutex
	published uint64

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Start enters the polling state: one tick now, then one per interval until
// Stop or ctx is done.
func (p *Poller) Start(ctx context.Context) error {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	if p.cancel != nil {
		return ErrStarted
	}

	ctx, p.cancel = context.WithCancel(ctx)
	p.wg.Add(1)
	go p.run(ctx)

	p.log.Infof("polling every %s", p.interval)
	return nil
}

// Stop cancels the schedule and in-flight requests and waits for them. No
// snapshot is applied after Stop returns.
func (p *Poller) Stop() {
	p.runMu.Lock()
	cancel := p.cancel
	p.runMu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	p.wg.Wait()
}

// Snapshot returns the last applied tick. Seq is 0 before the first one.
func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snap := p.snap
	snap.Positions = slices.Clone(snap.Positions)
	snap.Markers = slices.Clone(snap.Markers)
	return snap
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	ticker := await.Tick(p.interval)
	defer ticker.Stop()

	for {
		p.wg.Add(1)
		go p.poll(ctx, p.issued.Add(1))

		if !ticker.Await(ctx) {
			return
		}
	}
}

func (p *Poller) poll(ctx context.Context, seq uint64) {
	defer p.wg.Done()

	positions, err := p.src.LivePositions(ctx, p.box)
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		p.log.Warnf("tick %d: keeping previous positions: %s", seq, err)
		p.obs.ObserveTick(metrics.TickFailed, 0)
		return
	}

	p.apply(ctx, seq, positions)
}

// apply installs positions fetched by request seq unless a later request
// already won.
func (p *Poller) apply(ctx context.Context, seq uint64, positions []models.Position) bool {
	snap := Snapshot{
		Seq:       seq,
		At:        p.now(),
		Positions: positions,
		Markers:   BuildMarkers(positions),
	}

	p.mu.Lock()
	if seq <= p.applied {
		last := p.applied
		p.mu.Unlock()

		p.log.Debugf("tick %d: discarding response, tick %d already applied", seq, last)
		p.obs.ObserveTick(metrics.TickStale, 0)
		return false
	}
	p.applied = seq
	p.snap = snap
	p.mu.Unlock()

	p.obs.ObserveTick(metrics.TickApplied, len(snap.Markers))
	p.publish(ctx, snap)
	return true
}

func (p *Poller) publish(ctx context.Context, snap Snapshot) {
	p.pubMu.Lock()
	defer p.pubMu.Unlock()

	if snap.Seq <= p.published {
		return
	}
	p.published = snap.Seq

	for _, sink := range p.sinks {
		err := sink.Publish(ctx, snap)
		if err != nil {
			p.log.Warn(errors.WrapFailf(err, "publish tick %d", snap.Seq))
		}
	}
}
