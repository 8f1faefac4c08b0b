// Package scoring ranks reference-data rows against a campaign brief.
// Scores are bounded confidence values in [0,100]; every adjustment
// appends to the row's rationale so a planner can explain its picks.
package scoring

import (
	"regexp"
	"sort"
	"strings"

	"planwise/internal/core/domain"
)

const baseConfidence = 50

func clampConfidence(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

var (
	awarenessFormatPattern = regexp.MustCompile(`(?i)video|masthead|takeover`)
	leadGenFormatPattern   = regexp.MustCompile(`(?i)lead|form|native`)
	trafficFormatPattern   = regexp.MustCompile(`(?i)banner|native|display`)
	mobileFormatPattern    = regexp.MustCompile(`(?i)mobile|vertical`)
	cheapFormatPattern     = regexp.MustCompile(`(?i)banner|display`)
	premiumFormatPattern   = regexp.MustCompile(`(?i)takeover|masthead|premium`)
	takeoverFormatPattern  = regexp.MustCompile(`(?i)takeover|masthead`)
)

// ScoreFormats ranks ad formats for the brief. The playbook's funnel
// recommendations dominate, followed by objective fit, creative fit and
// budget realism.
func ScoreFormats(brief *domain.CampaignBrief, formats []domain.AdFormat, entry domain.PlaybookEntry) []domain.ScoredFormat {
	stage := domain.FunnelStageFor(brief.Objective)
	funnelFormats := entry.Config.Funnel[stage]

	scored := make([]domain.ScoredFormat, 0, len(formats))
	for _, f := range formats {
		conf := baseConfidence
		var reasons []string

		for _, rec := range funnelFormats {
			if containsFold(f.Name, rec) || containsFold(rec, f.Name) {
				conf += 30
				reasons = append(reasons, "matches "+string(stage)+" playbook")
				break
			}
		}
		for _, best := range entry.Config.BestFormats {
			if containsFold(f.Name, best) || containsFold(best, f.Name) {
				conf += 15
				reasons = append(reasons, "vertical best format")
				break
			}
		}

		if objectivePattern := formatPatternFor(brief.Objective); objectivePattern != nil && objectivePattern.MatchString(f.Name) {
			conf += 20
			reasons = append(reasons, "aligned with "+string(brief.Objective))
		}

		if creativeMatches(brief.CreativeAsset, f.Medium) {
			conf += 15
			reasons = append(reasons, "creative assets ready")
		}

		if mobileFormatPattern.MatchString(f.Name) {
			conf += 10
			reasons = append(reasons, "mobile-first placement")
		}

		switch {
		case brief.Budget > 0 && brief.Budget < 100_000:
			if cheapFormatPattern.MatchString(f.Name) {
				conf += 10
				reasons = append(reasons, "efficient at this budget")
			}
			if takeoverFormatPattern.MatchString(f.Name) {
				conf -= 20
				reasons = append(reasons, "expensive for this budget")
			}
		case brief.Budget > 200_000:
			if premiumFormatPattern.MatchString(f.Name) {
				conf += 15
				reasons = append(reasons, "premium impact affordable")
			}
		}

		scored = append(scored, domain.ScoredFormat{
			AdFormat:   f,
			Confidence: clampConfidence(conf),
			Reason:     strings.Join(reasons, "; "),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})
	return scored
}

func formatPatternFor(o domain.Objective) *regexp.Regexp {
	switch o {
	case domain.ObjectiveAwareness, domain.ObjectiveVideoView:
		return awarenessFormatPattern
	case domain.ObjectiveLeadGen:
		return leadGenFormatPattern
	case domain.ObjectiveTraffic:
		return trafficFormatPattern
	}
	return nil
}

func creativeMatches(asset domain.CreativeAsset, medium string) bool {
	switch asset {
	case domain.CreativeHybrid:
		return medium != ""
	case domain.CreativeVideo:
		return strings.EqualFold(medium, "video")
	case domain.CreativeStatic:
		return strings.EqualFold(medium, "static")
	case domain.CreativeInteractive:
		return strings.EqualFold(medium, "interactive")
	}
	return false
}
