package pubsub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/nikmy/flighthub/internal/live"
	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/pkg/errors"
	"github.com/nikmy/flighthub/pkg/logger"
)

const defaultWriteTimeout = 5 * time.Second

type counter interface {
	Add(float64)
}

// PositionRecord is one feed message. Messages are keyed by icao24 so that
// every aircraft stays on one partition.
type PositionRecord struct {
	Seq      uint64    `json:"seq"`
	At       time.Time `json:"at"`
	Icao24   string    `json:"icao24"`
	Callsign string    `json:"callsign"`
	Country  string    `json:"country"`
	Lat      float64   `json:"lat"`
	Lng      float64   `json:"lng"`
	Altitude float64   `json:"altitude"`
	Velocity float64   `json:"velocity"`
}

func NewKafkaProducer(cfg Config, published counter, log logger.Logger) *KafkaProducer {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: timeout,
	}

	return newProducer(w, published, log)
}

func newProducer(w messageWriter, published counter, log logger.Logger) *KafkaProducer {
	return &KafkaProducer{
		writer:    w,
		published: published,
		logger:    log.With("kafka_producer"),
	}
}

type KafkaProducer struct {
	writer    messageWriter
	published counter
	logger    logger.Logger
}

// Publish writes every located position of snap to the feed.
func (p *KafkaProducer) Publish(ctx context.Context, snap live.Snapshot) error {
	msgs := make([]kafka.Message, 0, len(snap.Positions))
	for _, pos := range snap.Positions {
		if !pos.Located() {
			continue
		}

		bytes, err := json.Marshal(record(snap, pos))
		if err != nil {
			return errors.WrapFail(err, "marshal position record")
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(pos.Icao24),
			Value: bytes,
		})
	}

	if len(msgs) == 0 {
		return nil
	}

	err := p.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		return errors.WrapFailf(err, "write %d position records", len(msgs))
	}

	p.published.Add(float64(len(msgs)))
	p.logger.Debugf("tick %d: wrote %d position records", snap.Seq, len(msgs))
	return nil
}

func (p *KafkaProducer) Close() error {
	return errors.WrapFail(p.writer.Close(), "close kafka writer")
}

func record(snap live.Snapshot, pos models.Position) PositionRecord {
	ll := pos.Latlong()
	return PositionRecord{
		Seq:      snap.Seq,
		At:       snap.At,
		Icao24:   pos.Icao24,
		Callsign: pos.Callsign,
		Country:  pos.Country,
		Lat:      ll.Lat,
		Lng:      ll.Long,
		Altitude: pos.Altitude.OrZero(),
		Velocity: pos.Velocity.OrZero(),
	}
}
