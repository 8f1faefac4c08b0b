package port

import (
	"context"

	"planwise/internal/core/domain"
)

// PlanRepository persists finalized media plans. It is an outbound port;
// the engine never reads this store during generation.
type PlanRepository interface {
	// SavePlan stores a finalized plan keyed by its id.
	SavePlan(ctx context.Context, plan *domain.MediaPlan) error
	// GetPlan returns a stored plan, or nil when the id is unknown.
	GetPlan(ctx context.Context, id string) (*domain.MediaPlan, error)
}
