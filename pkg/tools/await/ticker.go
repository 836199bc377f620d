package await

import (
	"context"
	"time"
)

type Ticker interface {
	Awaiter
	Stop()
}

type tickerAwaiter struct {
	*time.Ticker
}

func Tick(interval time.Duration) Ticker {
	return &tickerAwaiter{time.NewTicker(interval)}
}

func (t *tickerAwaiter) Await(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-t.Ticker.C:
		return true
	}
}
