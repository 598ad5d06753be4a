package availability

import (
	"context"
	"encoding/json"
	"time"

	"availcal/models"
	"availcal/services/scheduling"
	"availcal/utils"

	"go.uber.org/zap"
)

// MonthAvailability serves the cached month result when present, otherwise
// runs a full fetch-and-merge cycle.
func (s *DefaultService) MonthAvailability(ctx context.Context, resource, month string) (*models.MonthAvailability, error) {
	if s.Cache != nil {
		key := s.cacheKey(resource, month)
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached models.MonthAvailability
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
			s.logger().Warn("discarding unreadable cached availability", zap.String("key", key))
		}
	}
	return s.RefreshMonth(ctx, resource, month)
}

// RefreshMonth runs one cycle: request, parse, ingest, merge, publish. The
// result fully replaces whatever was cached for the month; it is never
// patched incrementally. A failed fetch degrades to an empty month rather
// than surfacing an error to the caller.
func (s *DefaultService) RefreshMonth(ctx context.Context, resource, month string) (*models.MonthAvailability, error) {
	start, end, err := MonthRange(month, s.Loc)
	if err != nil {
		return nil, err
	}

	query := scheduling.SlotQuery{
		Resource:        resource,
		Timezone:        s.Loc.String(),
		DurationMinutes: int(s.Duration / time.Minute),
		StartDate:       start.Format("2006-01-02"),
		EndDate:         end.Format("2006-01-02"),
	}

	raw, err := s.Fetcher.FetchSlots(ctx, query)
	if err != nil {
		// Transport, status, and decode failures all render as an empty
		// calendar; the UI stays available.
		s.logger().Warn("slot fetch failed, publishing empty month",
			zap.String("resource", resource),
			zap.String("month", month),
			zap.Error(err))
		utils.SetUpstreamHealth(false)
		raw = nil
	} else {
		utils.SetUpstreamHealth(true)
	}

	intervals := IngestSlots(raw, s.Duration)
	merged := Merge(intervals, s.Loc)

	result := &models.MonthAvailability{
		Resource:  resource,
		Month:     month,
		Timezone:  s.Loc.String(),
		Intervals: Annotate(merged, s.Loc),
		FetchedAt: time.Now(),
	}

	if s.Cache != nil && err == nil {
		s.storeCache(ctx, result)
	}
	return result, nil
}

// DayAvailability filters the month result down to one calendar cell.
func (s *DefaultService) DayAvailability(ctx context.Context, resource, date string) ([]models.MergedInterval, error) {
	day, _, err := DayRange(date, s.Loc)
	if err != nil {
		return nil, err
	}
	ma, err := s.MonthAvailability(ctx, resource, MonthKey(day, s.Loc))
	if err != nil {
		return nil, err
	}
	return ForDay(ma.Intervals, date), nil
}

func (s *DefaultService) storeCache(ctx context.Context, ma *models.MonthAvailability) {
	data, err := json.Marshal(ma)
	if err != nil {
		s.logger().Error("failed to marshal month availability", zap.Error(err))
		return
	}
	key := s.cacheKey(ma.Resource, ma.Month)
	if err := s.Cache.Set(ctx, key, data, utils.AvailabilityCacheTTL).Err(); err != nil {
		s.logger().Warn("failed to cache month availability", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultService) cacheKey(resource, month string) string {
	return utils.AvailabilityCachePrefix + resource + ":" + month
}

func (s *DefaultService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
