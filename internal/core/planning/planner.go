// Package planning runs the generation pipeline: a completed brief plus
// the reference datasets in, a scored and budgeted media plan out. The
// pipeline is pure; persistence and conversation state live elsewhere.
package planning

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"planwise/internal/core/domain"
	"planwise/internal/core/planning/allocation"
	"planwise/internal/core/planning/reach"
	"planwise/internal/core/planning/scoring"
	"planwise/internal/core/port"
)

// format selection caps per tier
const (
	formatCapLow  = 4
	formatCapMid  = 5
	formatCapHigh = 6
)

// feasibilityCPM is the blended RM CPM assumed when translating a budget
// into requested impressions for the inventory check.
const feasibilityCPM = 5

// lowBudgetFloor marks budgets small enough to constrain the channel and
// format mix regardless of inventory.
const lowBudgetFloor = 20_000

// Generate produces a media plan for the brief. It fails only when the
// reference data is unusable; degraded inputs surface as plan warnings.
func Generate(brief *domain.CampaignBrief, datasets *port.Datasets, playbook port.PlaybookProvider) (*domain.MediaPlan, error) {
	if !datasets.Ready() {
		return nil, port.ErrNotReady
	}

	lookupKey := brief.IndustryKey
	if lookupKey == "" {
		lookupKey = brief.Industry
	}
	entry := playbook.Lookup(lookupKey)

	tier, strategy := allocation.StrategyFor(brief.Budget)

	formats := selectFormats(brief, tier, scoring.ScoreFormats(brief, datasets.Formats, entry))
	audiences := scoring.SelectAudiences(brief, datasets.Audiences, entry, strategy.AudienceLimit)
	sites := scoring.SelectSites(brief, scoring.ScoreSites(brief, datasets.Sites, formats))

	alloc := allocation.Allocate(brief, tier, strategy, datasets.Rates)
	warnings := alloc.Warnings
	warnings = append(warnings, inventoryWarnings(brief.Budget, formats)...)
	if len(audiences) == 0 {
		warnings = append(warnings, domain.PlanWarning{
			Severity: domain.SeverityWarning,
			Message:  "no audience personas available, plan runs untargeted",
		})
	}
	if len(sites) == 0 {
		warnings = append(warnings, domain.PlanWarning{
			Severity: domain.SeverityWarning,
			Message:  "no publisher sites available for placement recommendations",
		})
	}

	unique, simpleSum := reach.Estimate(audiences)

	plan := &domain.MediaPlan{
		ID:        uuid.NewString(),
		Brief:     *brief.Clone(),
		Formats:   formats,
		Audiences: audiences,
		Sites:     sites,
		LineItems: alloc.Lines,
		Tier:      tier,
		Strategy:  strategy,
		Warnings:  warnings,
		Summary:   summarize(brief, alloc.Lines, unique, simpleSum),
		CreatedAt: time.Now().UTC(),
	}
	return plan, nil
}

// selectFormats reduces the scored list to the plan's format set. An
// explicit channel preference pulls its matching formats to the front
// before the tier cap is applied.
func selectFormats(brief *domain.CampaignBrief, tier domain.BudgetTier, scored []domain.ScoredFormat) []domain.ScoredFormat {
	limit := formatCapLow
	switch tier {
	case domain.TierMid:
		limit = formatCapMid
	case domain.TierHigh:
		limit = formatCapHigh
	}

	if keywords := preferenceFormatKeywords(brief.ChannelPreference); keywords != nil {
		var preferred, rest []domain.ScoredFormat
		for _, f := range scored {
			if matchesAny(f.Name+" "+f.Category, keywords) {
				preferred = append(preferred, f)
			} else {
				rest = append(rest, f)
			}
		}
		scored = append(preferred, rest...)
	}

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func preferenceFormatKeywords(pref domain.ChannelPreference) []string {
	switch pref {
	case domain.ChannelOTT:
		return []string{"ott", "video", "stream", "ctv"}
	case domain.ChannelSocial:
		return []string{"social", "feed", "story", "vertical"}
	case domain.ChannelDisplay:
		return []string{"display", "banner", "native", "leaderboard", "mrec"}
	}
	return nil
}

// inventoryWarnings grades the gap between the impressions a budget asks
// for and what the selected formats can deliver in a month. Formats with
// an unknown availability figure contribute nothing, and a plan with no
// availability data at all is not second-guessed.
func inventoryWarnings(budget int64, formats []domain.ScoredFormat) []domain.PlanWarning {
	var available int64
	for _, f := range formats {
		available += f.MonthlyAvailability
	}
	requested := float64(budget) / feasibilityCPM * 1000

	if available > 0 && requested > float64(available)*0.8 {
		capacityPct := float64(available) * feasibilityCPM / 1000 / float64(budget) * 100
		switch {
		case capacityPct < 20:
			suggested := int64(math.Round(float64(available)*feasibilityCPM/1000/1000)) * 1000
			return []domain.PlanWarning{{
				Severity: domain.SeverityCritical,
				Message: fmt.Sprintf(
					"selected formats offer only %.1fM available impressions against ~%.1fM requested, reduce the budget to about RM %d or pick higher-inventory formats",
					float64(available)/1e6, requested/1e6, suggested),
			}}
		case capacityPct < 50:
			return []domain.PlanWarning{{
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf(
					"limited inventory: selected formats offer ~%.1fM available impressions for ~%.1fM requested, consider adding higher-inventory formats",
					float64(available)/1e6, requested/1e6),
			}}
		}
	}

	if budget < lowBudgetFloor {
		return []domain.PlanWarning{{
			Severity: domain.SeverityInfo,
			Message:  "budgets under RM 20k limit the number of channels and formats in the plan",
		}}
	}
	return nil
}

func matchesAny(haystack string, keywords []string) bool {
	haystack = strings.ToLower(haystack)
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func summarize(brief *domain.CampaignBrief, lines []domain.LineItem, unique, simpleSum int64) domain.PlanSummary {
	var budget, impressions int64
	for _, l := range lines {
		budget += l.Budget
		impressions += l.Impressions
	}

	s := domain.PlanSummary{
		TotalBudget:      budget,
		TotalImpressions: impressions,
		UniqueReach:      unique,
		SimpleReachSum:   simpleSum,
		Geography:        strings.Join(brief.Geography, ", "),
		Devices:          strings.Join(brief.Devices, ", "),
		DurationWeeks:    brief.DurationWeeks,
	}
	if impressions > 0 {
		s.AvgCPM = math.Round(float64(budget)/float64(impressions)*1000*100) / 100
	}
	if brief.DurationWeeks > 0 {
		s.WeeklyBudget = budget / int64(brief.DurationWeeks)
		s.WeeklyImpressions = impressions / int64(brief.DurationWeeks)
	}
	return s
}
