// Package allocation turns a completed brief plus the rate card into
// budget line items. Platform selection follows the tier's channel
// priorities, budget split follows the tier's positional mix, and an
// explicit channel preference is enforced as a minimum spend share.
package allocation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"planwise/internal/core/domain"
)

// preferredMinShare is the minimum budget share granted to an explicitly
// preferred channel.
const preferredMinShare = 0.60

var preferenceKeywords = map[domain.ChannelPreference][]string{
	domain.ChannelOTT:     {"stream", "video", "ott", "ctv", "youtube", "astro", "viu", "iflix", "sooka"},
	domain.ChannelSocial:  {"social", "facebook", "instagram", "tiktok", "meta", "feed", "story", "reel"},
	domain.ChannelDisplay: {"display", "banner", "native", "programmatic", "leaderboard", "mrec", "skyscraper"},
}

// Result is the allocation output: line items plus non-fatal advisories.
type Result struct {
	Lines    []domain.LineItem
	Warnings []domain.PlanWarning
}

type candidate struct {
	rate    domain.RateCardEntry
	cpm     float64
	buyType domain.BuyingType
}

// Allocate builds line items for the brief. Rates that cannot serve the
// requested devices or cannot be priced within the tier's buy types are
// dropped; the survivors are ranked by channel priority and CPM, reduced
// to one entry per platform, and funded by the tier's mix.
func Allocate(brief *domain.CampaignBrief, tier domain.BudgetTier, strategy domain.TierStrategy, rates []domain.RateCardEntry) Result {
	var res Result

	priorities := channelPriority(brief.Objective, tier)

	var candidates []candidate
	for _, r := range rates {
		if !r.SupportsAnyDevice(brief.Devices) {
			continue
		}
		cpm, bt, ok := resolveForTier(r, brief.BuyingType, strategy)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{rate: r, cpm: cpm, buyType: bt})
	}
	if len(candidates) == 0 {
		res.Warnings = append(res.Warnings, domain.PlanWarning{
			Severity: domain.SeverityCritical,
			Message:  "no rate card inventory matches the requested devices and buy types",
		})
		return res
	}

	// high-tier plans chasing quality over raw reach prefer the pricier
	// inventory within each pillar
	expensiveFirst := tier == domain.TierHigh && brief.Priority != domain.PriorityMaxReach
	sort.SliceStable(candidates, func(i, j int) bool {
		pi := priorityIndex(priorities, candidates[i].rate.Pillar)
		pj := priorityIndex(priorities, candidates[j].rate.Pillar)
		if pi != pj {
			return pi < pj
		}
		if expensiveFirst {
			return candidates[i].cpm > candidates[j].cpm
		}
		return candidates[i].cpm < candidates[j].cpm
	})

	seen := make(map[string]bool)
	var selected []candidate
	for _, c := range candidates {
		if seen[c.rate.Platform] {
			continue
		}
		seen[c.rate.Platform] = true
		selected = append(selected, c)
		if len(selected) == strategy.MaxPlatforms {
			break
		}
	}

	res.Lines = splitBudget(brief.Budget, strategy.ChannelMix, selected)

	if pref, ok := preferenceKeywords[brief.ChannelPreference]; ok {
		res.Lines, res.Warnings = enforcePreference(res.Lines, res.Warnings, brief, pref)
	}

	res.Warnings = append(res.Warnings, complianceWarnings(res.Lines, tier, strategy)...)
	return res
}

// resolveForTier prices a rate row within the tier's allowed buy types.
// A requested type the tier permits is tried first through the normal
// fallback chain; otherwise the cheapest allowed pricing wins.
func resolveForTier(r domain.RateCardEntry, want domain.BuyingType, strategy domain.TierStrategy) (float64, domain.BuyingType, bool) {
	if want != "" && want != domain.BuyMixed && strategy.AllowsBuyType(want) {
		if cpm, bt, ok := r.ResolveCPM(want); ok && strategy.AllowsBuyType(bt) {
			return cpm, bt, true
		}
	}
	best, bestBT := 0.0, domain.BuyingType("")
	for _, allowed := range strategy.BuyingTypes {
		cpm, bt, ok := r.ResolveCPM(allowed)
		if !ok || !strategy.AllowsBuyType(bt) {
			continue
		}
		if best == 0 || cpm < best {
			best, bestBT = cpm, bt
		}
	}
	if best > 0 {
		return best, bestBT, true
	}
	return 0, "", false
}

// splitBudget applies the positional mix to the selected candidates. When
// more platforms were selected than the mix has fractions, the last
// fraction repeats for the overflow. The used fractions are renormalized
// to sum to one and integer rounding leftovers land on the first line, so
// line budgets always sum to the total exactly.
func splitBudget(total int64, mix []float64, selected []candidate) []domain.LineItem {
	n := len(selected)
	if n == 0 || len(mix) == 0 {
		return nil
	}
	if n > len(mix) {
		padded := make([]float64, n)
		copy(padded, mix)
		for i := len(mix); i < n; i++ {
			padded[i] = mix[len(mix)-1]
		}
		mix = padded
	}

	var mixSum float64
	for _, f := range mix[:n] {
		mixSum += f
	}

	lines := make([]domain.LineItem, n)
	var allocated int64
	for i, c := range selected {
		share := mix[i] / mixSum
		budget := int64(math.Floor(float64(total) * share))
		lines[i] = domain.LineItem{
			Platform: c.rate.Platform,
			Pillar:   c.rate.Pillar,
			Format:   c.rate.Format,
			BuyType:  c.buyType,
			CPM:      c.cpm,
			Budget:   budget,
		}
		allocated += budget
	}
	lines[0].Budget += total - allocated
	for i := range lines {
		lines[i].Impressions = impressions(lines[i].Budget, lines[i].CPM)
	}
	return lines
}

func impressions(budget int64, cpm float64) int64 {
	if cpm <= 0 {
		return 0
	}
	return int64(math.Floor(float64(budget) / cpm * 1000))
}

// enforcePreference rebalances spend so lines matching the preferred
// channel hold at least the minimum share. Non-matching lines shrink
// proportionally; impressions are recomputed from the new budgets.
func enforcePreference(lines []domain.LineItem, warnings []domain.PlanWarning, brief *domain.CampaignBrief, keywords []string) ([]domain.LineItem, []domain.PlanWarning) {
	var total, preferredSum int64
	preferred := make([]bool, len(lines))
	for i, l := range lines {
		total += l.Budget
		if matchesKeywords(l, keywords) {
			preferred[i] = true
			preferredSum += l.Budget
		}
	}
	if total == 0 {
		return lines, warnings
	}

	anyPreferred := preferredSum > 0
	if !anyPreferred {
		warnings = append(warnings, domain.PlanWarning{
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("no inventory in the plan matches the %s preference", brief.ChannelPreference),
		})
		return lines, warnings
	}

	target := int64(math.Round(float64(total) * preferredMinShare))
	if preferredSum >= target || preferredSum == total {
		return lines, warnings
	}

	otherSum := total - preferredSum
	boost := float64(target) / float64(preferredSum)
	shrink := float64(total-target) / float64(otherSum)

	var allocated int64
	largest := 0
	for i := range lines {
		factor := shrink
		if preferred[i] {
			factor = boost
		}
		lines[i].Budget = int64(math.Floor(float64(lines[i].Budget) * factor))
		allocated += lines[i].Budget
		if lines[i].Budget > lines[largest].Budget {
			largest = i
		}
	}
	lines[largest].Budget += total - allocated
	for i := range lines {
		lines[i].Impressions = impressions(lines[i].Budget, lines[i].CPM)
	}
	return lines, warnings
}

func matchesKeywords(l domain.LineItem, keywords []string) bool {
	haystack := strings.ToLower(l.Platform + " " + l.Format + " " + l.Pillar)
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// complianceWarnings checks the finished lines against the tier's intent.
func complianceWarnings(lines []domain.LineItem, tier domain.BudgetTier, strategy domain.TierStrategy) []domain.PlanWarning {
	var out []domain.PlanWarning
	if len(lines) == 0 {
		return out
	}

	hasPD := false
	hasProgrammatic := false
	pillars := make(map[string]bool)
	for _, l := range lines {
		if l.BuyType == domain.BuyPD {
			hasPD = true
		}
		if l.BuyType == domain.BuyPD || l.BuyType == domain.BuyPG {
			hasProgrammatic = true
		}
		pillars[l.Pillar] = true
	}

	if tier == domain.TierHigh && !hasPD {
		out = append(out, domain.PlanWarning{
			Severity: domain.SeverityWarning,
			Message:  "premium-tier budget without any PD line, consider programmatic for efficiency",
		})
	}
	if tier == domain.TierLow && hasProgrammatic {
		out = append(out, domain.PlanWarning{
			Severity: domain.SeverityWarning,
			Message:  "low-tier budget spread into programmatic buys, direct buys concentrate spend better",
		})
	}
	if len(lines) > strategy.MaxPlatforms {
		out = append(out, domain.PlanWarning{
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("plan spans %d platforms, above the %s cap of %d", len(lines), strategy.Name, strategy.MaxPlatforms),
		})
	}
	if len(lines) == strategy.MaxPlatforms && len(pillars) < 2 {
		out = append(out, domain.PlanWarning{
			Severity: domain.SeverityInfo,
			Message:  "plan lacks diversification, every line sits in a single channel pillar",
		})
	}
	return out
}
