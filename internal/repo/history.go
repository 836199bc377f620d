package repo

import (
	"context"

	"github.com/nikmy/flighthub/internal/models"
)

// History stores recorded searches.
type History interface {
	Add(ctx context.Context, s models.Search) error

	// Recent returns at most limit searches, newest first.
	Recent(ctx context.Context, limit int) ([]models.Search, error)

	Close(ctx context.Context) error
}

const searchFieldAt = "at"
