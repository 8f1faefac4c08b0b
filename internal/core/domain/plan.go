package domain

import "time"

// BudgetTier classifies total budget into a spending band.
type BudgetTier string

const (
	TierLow  BudgetTier = "low"
	TierMid  BudgetTier = "mid"
	TierHigh BudgetTier = "high"
)

// TierStrategy is the configuration value object looked up per tier. The
// ChannelMix fractions are applied positionally to the sorted platform list
// and normalized so they sum to one.
type TierStrategy struct {
	Name          string
	MaxPlatforms  int
	AudienceLimit int
	BuyingTypes   []BuyingType
	AllowPD       bool
	AllowPremium  bool
	ChannelMix    []float64
}

// AllowsBuyType reports whether the tier permits a buy type.
func (s TierStrategy) AllowsBuyType(bt BuyingType) bool {
	for _, allowed := range s.BuyingTypes {
		if allowed == bt {
			return true
		}
	}
	return false
}

// LineItem is one allocation output row. Budget is whole RM; impressions
// are floor(budget / cpm * 1000).
type LineItem struct {
	Platform    string
	Pillar      string
	Format      string
	BuyType     BuyingType
	CPM         float64
	Budget      int64
	Impressions int64
}

// WarningSeverity grades a non-fatal plan advisory.
type WarningSeverity string

const (
	SeverityInfo     WarningSeverity = "info"
	SeverityWarning  WarningSeverity = "warning"
	SeverityCritical WarningSeverity = "critical"
)

// PlanWarning is a structured advisory attached to a plan. Warnings never
// block plan creation.
type PlanWarning struct {
	Severity WarningSeverity
	Message  string
}

// ScoredFormat wraps a format row with its computed confidence and
// rationale. Recomputed per request.
type ScoredFormat struct {
	AdFormat
	Confidence int
	Reason     string
}

// ScoredAudience wraps a persona row with geo weighting and confidence.
type ScoredAudience struct {
	AudiencePersona
	GeoReachScore int64
	Confidence    int
	Reason        string
}

// ScoredSite wraps a publisher row with its confidence and rationale.
type ScoredSite struct {
	PublisherSite
	Confidence int
	Reason     string
	Regional   bool
}

// PlanSummary aggregates plan-level figures for display.
type PlanSummary struct {
	TotalBudget       int64
	TotalImpressions  int64
	UniqueReach       int64
	SimpleReachSum    int64
	AvgCPM            float64
	Geography         string
	Devices           string
	DurationWeeks     int
	WeeklyBudget      int64
	WeeklyImpressions int64
}

// MediaPlan is the terminal artifact of a successful generation. It is
// immutable once returned; a regeneration replaces it wholesale.
type MediaPlan struct {
	ID        string
	Brief     CampaignBrief
	Formats   []ScoredFormat
	Audiences []ScoredAudience
	Sites     []ScoredSite
	LineItems []LineItem
	Tier      BudgetTier
	Strategy  TierStrategy
	Warnings  []PlanWarning
	Summary   PlanSummary
	CreatedAt time.Time
}
