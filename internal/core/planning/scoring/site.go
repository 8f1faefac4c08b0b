package scoring

import (
	"regexp"
	"sort"
	"strings"

	"planwise/internal/core/domain"
)

const maxSelectedSites = 5

// vernacularKeywords maps a cultural context to publisher-name cues for
// language-matched inventory.
var vernacularKeywords = map[domain.CulturalContext][]string{
	domain.CultureMalay:        {"berita", "utusan", "melayu", "sinar", "harian"},
	domain.CultureChinese:      {"sin chew", "sinchew", "oriental", "nanyang", "china press"},
	domain.CultureIndian:       {"tamil", "nesan", "makkal", "vanakkam"},
	domain.CultureSabahSarawak: {"borneo", "sabah", "sarawak"},
}

var premiumSitePattern = regexp.MustCompile(`(?i)astro|tonton|ott|\btv\b|streaming|media|news`)

// ScoreSites ranks publishers for the brief. Category fit against the
// chosen formats and monthly traffic carry the score; regional campaigns
// boost sites named after a target state.
func ScoreSites(brief *domain.CampaignBrief, sites []domain.PublisherSite, formats []domain.ScoredFormat) []domain.ScoredSite {
	categories := make(map[string]bool, len(formats))
	for _, f := range formats {
		if f.Category != "" {
			categories[strings.ToLower(f.Category)] = true
		}
	}
	nationwide := brief.Nationwide()

	scored := make([]domain.ScoredSite, 0, len(sites))
	for _, s := range sites {
		conf := baseConfidence
		var reasons []string
		regional := false

		if categories[strings.ToLower(s.Category)] {
			conf += 20
			reasons = append(reasons, "carries the selected format categories")
		}
		switch {
		case s.MonthlyTraffic > 10_000_000:
			conf += 15
			reasons = append(reasons, "top-tier traffic")
		case s.MonthlyTraffic > 5_000_000:
			conf += 10
			reasons = append(reasons, "strong traffic")
		}
		if nationwide {
			conf += 10
			reasons = append(reasons, "national footprint")
		} else {
			for _, state := range brief.Geography {
				if containsFold(s.Name, state) {
					conf += 15
					regional = true
					reasons = append(reasons, "regional match: "+state)
				}
			}
		}
		if s.Industry != "" && (containsFold(brief.Industry, s.Industry) || containsFold(s.Industry, brief.Industry)) {
			conf += 15
			reasons = append(reasons, "industry affinity")
		}

		scored = append(scored, domain.ScoredSite{
			PublisherSite: s,
			Confidence:    clampConfidence(conf),
			Reason:        strings.Join(reasons, "; "),
			Regional:      regional,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Confidence != scored[j].Confidence {
			return scored[i].Confidence > scored[j].Confidence
		}
		return scored[i].MonthlyTraffic > scored[j].MonthlyTraffic
	})
	return scored
}

// SelectSites reduces the scored list to the plan's site set. A cultural
// campaign leads with vernacular inventory, then premium entertainment
// and news properties, then whatever traffic fills the rest.
func SelectSites(brief *domain.CampaignBrief, scored []domain.ScoredSite) []domain.ScoredSite {
	if brief.Cultural == "" {
		if len(scored) > maxSelectedSites {
			return scored[:maxSelectedSites]
		}
		return scored
	}

	keywords := vernacularKeywords[brief.Cultural]
	var selected []domain.ScoredSite
	have := make(map[string]bool)
	add := func(s domain.ScoredSite, reason string) {
		if have[s.Name] || len(selected) >= maxSelectedSites {
			return
		}
		have[s.Name] = true
		if reason != "" {
			if s.Reason != "" {
				s.Reason += "; "
			}
			s.Reason += reason
		}
		selected = append(selected, s)
	}

	vernacular := 0
	for _, s := range scored {
		if vernacular >= 3 {
			break
		}
		for _, kw := range keywords {
			if containsFold(s.Name, kw) {
				add(s, "vernacular fit for "+string(brief.Cultural)+" audience")
				vernacular++
				break
			}
		}
	}

	premium := 0
	for _, s := range scored {
		if premium >= 2 {
			break
		}
		if !have[s.Name] && premiumSitePattern.MatchString(s.Name) {
			add(s, "premium festive placement")
			premium++
		}
	}

	for _, s := range scored {
		if len(selected) >= maxSelectedSites {
			break
		}
		add(s, "")
	}
	return selected
}
