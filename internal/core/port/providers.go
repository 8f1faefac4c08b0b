package port

import (
	"context"
	"errors"

	"planwise/internal/core/domain"
)

// ErrNotReady signals that the reference datasets required for plan
// generation are empty or not yet loaded. Callers should retry after a
// bounded wait instead of surfacing a hard failure.
var ErrNotReady = errors.New("reference datasets not ready")

// Datasets is an immutable snapshot of the four reference collections the
// engine plans against. It is loaded once per generation and never written.
type Datasets struct {
	Rates     []domain.RateCardEntry
	Formats   []domain.AdFormat
	Audiences []domain.AudiencePersona
	Sites     []domain.PublisherSite
}

// Ready reports whether the snapshot contains enough data to plan with.
// Rate cards and formats are mandatory; audiences and sites degrade
// gracefully to warnings.
func (d *Datasets) Ready() bool {
	return d != nil && len(d.Rates) > 0 && len(d.Formats) > 0
}

// DatasetProvider exposes the read-only reference collections. It is an
// outbound port; implementations must tolerate empty tables.
type DatasetProvider interface {
	LoadDatasets(ctx context.Context) (*Datasets, error)
}

// PlaybookProvider resolves an industry to its vertical playbook entry.
// Lookup never fails: unknown industries resolve to a generic fallback
// configuration, identified by the entry's Source field. Match scans free
// text for vertical keywords and reports whether any vertical matched.
type PlaybookProvider interface {
	Lookup(industry string) domain.PlaybookEntry
	Match(text string) (domain.PlaybookEntry, bool)
}
