package allocation

import "planwise/internal/core/domain"

// tier thresholds in whole RM
const (
	lowTierCeiling = 100_000
	midTierCeiling = 200_000
)

// StrategyFor classifies a budget and returns the tier's allocation
// strategy. Low budgets concentrate on few platforms and direct buys;
// larger budgets open up programmatic and premium inventory.
func StrategyFor(budget int64) (domain.BudgetTier, domain.TierStrategy) {
	switch {
	case budget <= lowTierCeiling:
		return domain.TierLow, domain.TierStrategy{
			Name:          "Focused Concentration",
			MaxPlatforms:  3,
			AudienceLimit: 2,
			BuyingTypes:   []domain.BuyingType{domain.BuyDirect},
			ChannelMix:    []float64{0.60, 0.30, 0.10},
		}
	case budget <= midTierCeiling:
		return domain.TierMid, domain.TierStrategy{
			Name:          "Balanced Multi-Channel",
			MaxPlatforms:  5,
			AudienceLimit: 4,
			BuyingTypes:   []domain.BuyingType{domain.BuyDirect, domain.BuyPD},
			AllowPD:       true,
			ChannelMix:    []float64{0.40, 0.30, 0.20, 0.10},
		}
	default:
		return domain.TierHigh, domain.TierStrategy{
			Name:          "Premium Diversification",
			MaxPlatforms:  6,
			AudienceLimit: 6,
			BuyingTypes:   []domain.BuyingType{domain.BuyDirect, domain.BuyPD, domain.BuyPG},
			AllowPD:       true,
			AllowPremium:  true,
			ChannelMix:    []float64{0.35, 0.25, 0.20, 0.12, 0.08},
		}
	}
}

// channelPriority orders pillars by how well they serve the objective at
// the given spending tier. Pillars not listed sort last.
func channelPriority(objective domain.Objective, tier domain.BudgetTier) []string {
	switch objective {
	case domain.ObjectiveAwareness, domain.ObjectiveVideoView:
		switch tier {
		case domain.TierLow:
			return []string{"Social", "Display", "Video"}
		case domain.TierMid:
			return []string{"Video", "Display", "Social", "Native"}
		default:
			return []string{"Video", "OTT", "Display", "Social", "Native", "Premium"}
		}
	case domain.ObjectiveTraffic, domain.ObjectiveEngagement:
		switch tier {
		case domain.TierLow:
			return []string{"Display", "Native", "Social"}
		case domain.TierMid:
			return []string{"Display", "Video", "Native", "Social"}
		default:
			return []string{"Display", "Video", "Native", "Social", "Retargeting"}
		}
	default:
		switch tier {
		case domain.TierLow:
			return []string{"Native", "Display", "Social"}
		case domain.TierMid:
			return []string{"Native", "Display", "Retargeting", "Social"}
		default:
			return []string{"Native", "Display", "Retargeting", "Video", "Social"}
		}
	}
}

func priorityIndex(priorities []string, pillar string) int {
	for i, p := range priorities {
		if p == pillar {
			return i
		}
	}
	return len(priorities)
}
