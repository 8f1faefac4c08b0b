package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"planwise/internal/core/domain"
)

// PlanRepository implements port.PlanRepository using pgxpool. Plans are
// stored as a single JSONB document per row; the engine only ever reads a
// plan back whole, so there is no benefit in relational decomposition.
type PlanRepository struct {
	pool *pgxpool.Pool
}

// NewPlanRepository returns a new repository instance.
func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

// SavePlan stores a finalized plan keyed by its id. Re-saving the same id
// replaces the payload.
func (r *PlanRepository) SavePlan(ctx context.Context, plan *domain.MediaPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan %s: %w", plan.ID, err)
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO media_plans (id, payload, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload`,
		plan.ID, payload, plan.CreatedAt)
	return err
}

// GetPlan returns a stored plan, or nil when the id is unknown.
func (r *PlanRepository) GetPlan(ctx context.Context, id string) (*domain.MediaPlan, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM media_plans WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var plan domain.MediaPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan %s: %w", id, err)
	}
	return &plan, nil
}
