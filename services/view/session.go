package view

import (
	"context"
	"time"

	"availcal/models"
	"availcal/services/availability"
	"availcal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSession opens a new view on the current month and runs the initial
// fetch cycle.
func (s *DefaultSessionService) CreateSession(ctx context.Context, resource string) (*models.ViewSession, *models.MonthAvailability, error) {
	now := time.Now()
	sess := &models.ViewSession{
		ID:         uuid.New().String(),
		Resource:   resource,
		Month:      availability.MonthKey(now, s.Loc),
		Theme:      models.ThemeLight,
		Generation: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, nil, err
	}
	ma := s.runCycle(ctx, sess)
	return sess, ma, nil
}

// GetSession loads a session by ID.
func (s *DefaultSessionService) GetSession(ctx context.Context, id string) (*models.ViewSession, error) {
	return s.Sessions.Get(ctx, id)
}

// NavigateMonth shifts the visible month and refetches availability.
func (s *DefaultSessionService) NavigateMonth(ctx context.Context, id string, delta int) (*models.ViewSession, *models.MonthAvailability, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	month, err := availability.AddMonths(sess.Month, delta, s.Loc)
	if err != nil {
		return nil, nil, err
	}
	sess.Month = month
	sess.Generation++
	sess.UpdatedAt = time.Now()
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, nil, err
	}
	ma := s.runCycle(ctx, sess)
	return sess, ma, nil
}

// ToggleTheme flips the theme preference without touching availability.
func (s *DefaultSessionService) ToggleTheme(ctx context.Context, id string) (*models.ViewSession, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Theme == models.ThemeDark {
		sess.Theme = models.ThemeLight
	} else {
		sess.Theme = models.ThemeDark
	}
	sess.UpdatedAt = time.Now()
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// RequestRefresh forces a fresh cycle for the current month.
func (s *DefaultSessionService) RequestRefresh(ctx context.Context, id string) (*models.ViewSession, *models.MonthAvailability, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	sess.RefreshCount++
	sess.Generation++
	sess.UpdatedAt = time.Now()
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, nil, err
	}

	ma, err := s.Availability.RefreshMonth(ctx, sess.Resource, sess.Month)
	if err != nil {
		utils.GetLogger().Warn("forced refresh failed", zap.String("session", sess.ID), zap.Error(err))
		return sess, nil, nil
	}
	return sess, s.publish(ctx, sess, ma), nil
}

// runCycle fetches and merges the session's visible month. Cycle failures
// degrade to no result; the session itself stays valid.
func (s *DefaultSessionService) runCycle(ctx context.Context, sess *models.ViewSession) *models.MonthAvailability {
	ma, err := s.Availability.MonthAvailability(ctx, sess.Resource, sess.Month)
	if err != nil {
		utils.GetLogger().Warn("availability cycle failed",
			zap.String("session", sess.ID),
			zap.String("month", sess.Month),
			zap.Error(err))
		return nil
	}
	return s.publish(ctx, sess, ma)
}

// publish stamps the result with the generation that requested it and drops
// it if a later transition has already superseded that generation. This is
// the explicit last-resolved-wins rule: a stale in-flight cycle can never
// overwrite a newer view.
func (s *DefaultSessionService) publish(ctx context.Context, sess *models.ViewSession, ma *models.MonthAvailability) *models.MonthAvailability {
	ma.Generation = sess.Generation

	current, err := s.Sessions.Get(ctx, sess.ID)
	if err == nil && current.Generation > ma.Generation {
		utils.GetLogger().Debug("dropping superseded availability result",
			zap.String("session", sess.ID),
			zap.Int64("resultGeneration", ma.Generation),
			zap.Int64("currentGeneration", current.Generation))
		return nil
	}
	return ma
}
