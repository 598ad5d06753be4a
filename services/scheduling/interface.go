package scheduling

import (
	"context"

	"availcal/models"
)

// SlotQuery names the target resource and date window for one fetch. The
// service and staff identifiers are fixed per deployment; StartDate is
// inclusive and EndDate exclusive.
type SlotQuery struct {
	Resource        string `json:"resource"`
	ServiceID       string `json:"serviceId,omitempty"`
	StaffID         string `json:"staffId,omitempty"`
	Timezone        string `json:"timezone"`
	DurationMinutes int    `json:"durationMinutes"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
}

// SlotFetcher retrieves raw bookable slots from the scheduling backend.
type SlotFetcher interface {
	FetchSlots(ctx context.Context, q SlotQuery) ([]models.RawSlot, error)
}
