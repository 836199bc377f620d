package dashboard

import (
	"context"

	"github.com/nikmy/flighthub/internal/backend"
	"github.com/nikmy/flighthub/internal/models"
)

type backendClient interface {
	Flights(ctx context.Context, q backend.FlightQuery) ([]models.Flight, error)
	Airports(ctx context.Context) ([]models.Airport, error)
	Airlines(ctx context.Context) ([]models.Airline, error)
	Aircraft(ctx context.Context) ([]models.Airplane, error)
	CacheInfo(ctx context.Context) (backend.CacheInfo, error)
}

type historyRepo interface {
	Add(ctx context.Context, s models.Search) error
	Recent(ctx context.Context, limit int) ([]models.Search, error)
}

type observer interface {
	ObserveFetch(kind, outcome string)
	ObserveCacheInfo(result string)
}
