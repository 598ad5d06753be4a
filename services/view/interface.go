package view

import (
	"context"
	"time"

	"availcal/models"
	"availcal/services/availability"
)

// SessionService manages the explicit state of one calendar view: visible
// month, theme, and refresh counter. Every state transition that changes what
// the calendar shows triggers a fresh fetch-and-merge cycle.
type SessionService interface {
	CreateSession(ctx context.Context, resource string) (*models.ViewSession, *models.MonthAvailability, error)
	GetSession(ctx context.Context, id string) (*models.ViewSession, error)
	// NavigateMonth shifts the visible month by delta and refetches.
	NavigateMonth(ctx context.Context, id string, delta int) (*models.ViewSession, *models.MonthAvailability, error)
	// ToggleTheme flips light/dark. Presentation only; no refetch.
	ToggleTheme(ctx context.Context, id string) (*models.ViewSession, error)
	// RequestRefresh forces a cycle for the current month, bypassing cache.
	RequestRefresh(ctx context.Context, id string) (*models.ViewSession, *models.MonthAvailability, error)
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Availability availability.Service
	Sessions     SessionStore
	Loc          *time.Location
}
