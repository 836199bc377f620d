package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nikmy/flighthub/internal/api"
	"github.com/nikmy/flighthub/internal/backend"
	"github.com/nikmy/flighthub/internal/dashboard"
	"github.com/nikmy/flighthub/internal/live"
	"github.com/nikmy/flighthub/internal/metrics"
	"github.com/nikmy/flighthub/internal/pubsub"
	"github.com/nikmy/flighthub/internal/push"
	"github.com/nikmy/flighthub/internal/repo"
	"github.com/nikmy/flighthub/internal/settings"
	"github.com/nikmy/flighthub/internal/telegram"
	"github.com/nikmy/flighthub/internal/view"
	"github.com/nikmy/flighthub/pkg/errors"
	"github.com/nikmy/flighthub/pkg/logger"
)

const (
	memoryHistoryCapacity = dashboard.HistoryLimit
	shutdownTimeout       = 10 * time.Second
)

func main() {
	cfg, err := loadConfig(parseFlags())
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	client, err := backend.New(cfg.Backend, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init backend client"))
	}

	render, err := view.NewRenderer()
	if err != nil {
		log.Panic(errors.WrapFail(err, "init renderer"))
	}

	history, err := openHistory(ctx, cfg.Mongo, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init search history"))
	}

	dash := dashboard.New(client, render, history, m, log)
	theme := settings.NewStore(cfg.Settings, log)
	hub := push.NewHub(m.PushClients, log)

	sinks := []live.Sink{hub}

	var producer *pubsub.KafkaProducer
	if cfg.Kafka.Enabled {
		producer = pubsub.NewKafkaProducer(cfg.Kafka, m.FeedPublished, log)
		sinks = append(sinks, producer)
	}

	var (
		poller  *live.Poller
		markers interface{ Snapshot() live.Snapshot }
	)
	if cfg.Live.Enabled {
		poller = live.NewPoller(client, cfg.Live, m, log, sinks...)
		markers = poller
	}

	ops := push.NewOpsServer(cfg.Ops, hub, registry, log)
	server := api.NewServer(cfg.HTTP, log, dash, theme, markers, render)

	var bot *telegram.Bot
	if cfg.Telegram.Enabled {
		bot, err = telegram.New(log, cfg.Telegram, dash, dash.State(), markers, theme)
		if err != nil {
			log.Panic(errors.WrapFail(err, "initialize bot service"))
		}
	}

	var wg sync.WaitGroup
	goRun := func(name string, run func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := run(ctx)
			if err != nil && ctx.Err() == nil {
				log.Error(errors.WrapFailf(err, "run %s", name))
				cancel()
			}
		}()
	}

	goRun("settings store", theme.Run)
	goRun("ops server", ops.Run)
	goRun("dashboard server", server.Serve)

	changes, unsubscribe := theme.Subscribe()
	defer unsubscribe()
	go hub.FollowTheme(ctx, changes)

	if poller != nil {
		err = poller.Start(ctx)
		if err != nil {
			log.Panic(errors.WrapFail(err, "start live poller"))
		}
	}

	if bot != nil {
		err = bot.Run(ctx)
		if err != nil {
			log.Panic(errors.WrapFail(err, "start bot"))
		}
	}

	stdlog.Println("FlightHub has been started")

	<-ctx.Done()
	stdlog.Println("Graceful shutdown...")

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()

	if bot != nil {
		bot.Stop()
	}
	if poller != nil {
		poller.Stop()
	}

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Warn(err)
	}

	if producer != nil {
		err = producer.Close()
		if err != nil {
			log.Warn(errors.WrapFail(err, "close kafka producer"))
		}
	}

	err = history.Close(shutdownCtx)
	if err != nil {
		log.Warn(errors.WrapFail(err, "close search history"))
	}

	wg.Wait()
	stdlog.Println("Shutdown complete")
}

func openHistory(ctx context.Context, cfg repo.MongoConfig, log logger.Logger) (repo.History, error) {
	if !cfg.Enabled {
		return repo.NewMemoryHistory(memoryHistoryCapacity), nil
	}
	return repo.NewMongoHistory(ctx, cfg, log)
}
