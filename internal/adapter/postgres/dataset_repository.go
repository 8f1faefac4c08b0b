package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"planwise/internal/core/domain"
	"planwise/internal/core/port"
)

// DatasetRepository implements port.DatasetProvider over PostgreSQL. The
// four reference tables are read-only from the engine's point of view;
// empty tables yield empty slices, never an error.
type DatasetRepository struct {
	pool *pgxpool.Pool
}

// NewDatasetRepository returns a new repository instance.
func NewDatasetRepository(pool *pgxpool.Pool) *DatasetRepository {
	return &DatasetRepository{pool: pool}
}

// LoadDatasets reads a full snapshot of the reference collections.
func (r *DatasetRepository) LoadDatasets(ctx context.Context) (*port.Datasets, error) {
	rates, err := r.loadRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rate cards: %w", err)
	}
	formats, err := r.loadFormats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ad formats: %w", err)
	}
	audiences, err := r.loadAudiences(ctx)
	if err != nil {
		return nil, fmt.Errorf("load audience personas: %w", err)
	}
	sites, err := r.loadSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("load publisher sites: %w", err)
	}
	return &port.Datasets{
		Rates:     rates,
		Formats:   formats,
		Audiences: audiences,
		Sites:     sites,
	}, nil
}

func (r *DatasetRepository) loadRates(ctx context.Context) ([]domain.RateCardEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, platform, pillar, platform_type, format, devices,
               cpm_direct, cpm_pg, cpm_pd
        FROM rate_cards
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RateCardEntry, error) {
		var e domain.RateCardEntry
		err := row.Scan(
			&e.ID,
			&e.Platform,
			&e.Pillar,
			&e.PlatformType,
			&e.Format,
			&e.Devices,
			&e.CPMDirect,
			&e.CPMPG,
			&e.CPMPD,
		)
		return e, err
	})
}

func (r *DatasetRepository) loadFormats(ctx context.Context) ([]domain.AdFormat, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, goal, medium, category, platform, monthly_availability
        FROM ad_formats
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdFormat, error) {
		var f domain.AdFormat
		err := row.Scan(&f.ID, &f.Name, &f.Goal, &f.Medium, &f.Category, &f.Platform, &f.MonthlyAvailability)
		return f, err
	})
}

func (r *DatasetRepository) loadAudiences(ctx context.Context) ([]domain.AudiencePersona, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, total_reach, reach_by_state, interests
        FROM audience_personas
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AudiencePersona, error) {
		var (
			p        domain.AudiencePersona
			reachRaw []byte
		)
		if err := row.Scan(&p.ID, &p.Name, &p.TotalReach, &reachRaw, &p.Interests); err != nil {
			return p, err
		}
		if len(reachRaw) > 0 {
			if err := json.Unmarshal(reachRaw, &p.ReachByState); err != nil {
				return p, fmt.Errorf("persona %q reach_by_state: %w", p.Name, err)
			}
		}
		return p, nil
	})
}

func (r *DatasetRepository) loadSites(ctx context.Context) ([]domain.PublisherSite, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, category, monthly_traffic, industry
        FROM publisher_sites
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PublisherSite, error) {
		var s domain.PublisherSite
		err := row.Scan(&s.ID, &s.Name, &s.Category, &s.MonthlyTraffic, &s.Industry)
		return s, err
	})
}
