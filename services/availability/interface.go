package availability

import (
	"context"
	"time"

	"availcal/models"
	"availcal/services/scheduling"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service computes merged availability for a resource's calendar view.
type Service interface {
	// MonthAvailability runs one fetch-and-merge cycle for the given month,
	// serving from cache when a fresh result exists.
	MonthAvailability(ctx context.Context, resource, month string) (*models.MonthAvailability, error)
	// RefreshMonth runs a cycle unconditionally, bypassing the cache.
	RefreshMonth(ctx context.Context, resource, month string) (*models.MonthAvailability, error)
	// DayAvailability returns the merged intervals whose start falls on the
	// given calendar day.
	DayAvailability(ctx context.Context, resource, date string) ([]models.MergedInterval, error)
}

// DefaultService implements Service on top of a slot fetcher and Redis cache.
type DefaultService struct {
	Fetcher  scheduling.SlotFetcher
	Cache    *redis.Client
	Loc      *time.Location
	Duration time.Duration
	Logger   *zap.Logger
}
