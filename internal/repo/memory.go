package repo

import (
	"context"
	"sync"

	"github.com/nikmy/flighthub/internal/models"
)

// NewMemoryHistory keeps the last capacity searches in process memory. It
// stands in for MongoDB when no database is configured.
func NewMemoryHistory(capacity int) *MemoryHistory {
	return &MemoryHistory{capacity: capacity}
}

type MemoryHistory struct {
	capacity int

	mu       sync.Mutex
	searches []models.Search
}

func (h *MemoryHistory) Add(_ context.Context, s models.Search) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.searches = append(h.searches, s)
	if over := len(h.searches) - h.capacity; h.capacity > 0 && over > 0 {
		h.searches = append(h.searches[:0:0], h.searches[over:]...)
	}
	return nil
}

func (h *MemoryHistory) Recent(_ context.Context, limit int) ([]models.Search, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.searches)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]models.Search, 0, n)
	for i := len(h.searches) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, h.searches[i])
	}
	return out, nil
}

func (h *MemoryHistory) Close(context.Context) error {
	return nil
}
