package scoring

import (
	"regexp"
	"sort"
	"strings"

	"planwise/internal/core/domain"
)

// industryFallbackPersonas lists the segments that must anchor a plan for
// verticals where a generic reach-led pick misses the buying audience.
var industryFallbackPersonas = []struct {
	pattern  *regexp.Regexp
	personas []string
}{
	{regexp.MustCompile(`(?i)beauty|cosmetic`), []string{"Beauty Enthusiasts", "Fashion Icons", "Young Working Adult"}},
	{regexp.MustCompile(`(?i)finance|banking|bank\b|insurance`), []string{"Corporate Visionaries", "Emerging Affluents", "Investors", "Young Working Adult"}},
	{regexp.MustCompile(`(?i)automotive`), []string{"Car Enthusiasts", "New Car Intenders", "Emerging Affluents"}},
	{regexp.MustCompile(`(?i)property|real estate`), []string{"Property Hunters", "Newlyweds", "Emerging Affluents"}},
}

type audiencePicker struct {
	brief       *domain.CampaignBrief
	byName      map[string]domain.AudiencePersona
	selected    []domain.ScoredAudience
	have        map[string]bool
	whitelisted map[string]bool
	limit       int
}

// SelectAudiences picks up to limit personas for the brief. Selection is
// a priority cascade: campaign-context personas first, then the vertical
// playbook's primary and secondary mapping, then industry fallbacks and
// interest matches, finally raw reach. Blacklisted personas never enter;
// whitelisted ones are forced in, evicting the weakest pick if needed.
func SelectAudiences(brief *domain.CampaignBrief, personas []domain.AudiencePersona, entry domain.PlaybookEntry, limit int) []domain.ScoredAudience {
	if limit <= 0 || len(personas) == 0 {
		return nil
	}

	p := &audiencePicker{
		brief:       brief,
		byName:      make(map[string]domain.AudiencePersona, len(personas)),
		have:        make(map[string]bool),
		whitelisted: make(map[string]bool),
		limit:       limit,
	}
	for _, persona := range personas {
		p.byName[strings.ToLower(persona.Name)] = persona
	}

	p.pickContext()
	p.pickPlaybook(entry)
	p.pickIndustryFallback()
	p.pickInterestMatch(personas)
	p.pickTopReach(personas)
	p.forceWhitelist(personas)

	sort.SliceStable(p.selected, func(i, j int) bool {
		return p.selected[i].GeoReachScore > p.selected[j].GeoReachScore
	})
	if len(p.selected) > limit {
		p.selected = p.selected[:limit]
	}
	return p.selected
}

func (p *audiencePicker) blacklisted(name string) bool {
	for _, term := range p.brief.Blacklist {
		if containsFold(name, term) || containsFold(term, name) {
			return true
		}
	}
	return false
}

func (p *audiencePicker) add(persona domain.AudiencePersona, confidence int, reason string) bool {
	key := strings.ToLower(persona.Name)
	if p.have[key] || p.blacklisted(persona.Name) {
		return false
	}
	p.have[key] = true
	p.selected = append(p.selected, domain.ScoredAudience{
		AudiencePersona: persona,
		GeoReachScore:   persona.GeoReach(p.brief.Geography),
		Confidence:      clampConfidence(confidence),
		Reason:          reason,
	})
	return true
}

func (p *audiencePicker) addByName(name string, confidence int, reason string) bool {
	persona, ok := p.byName[strings.ToLower(name)]
	if !ok {
		return false
	}
	return p.add(persona, confidence, reason)
}

// pickContext seeds the selection with personas detected from seasonal,
// cultural or product-attribute signals. These outrank everything else.
func (p *audiencePicker) pickContext() {
	var found []domain.AudiencePersona
	for _, name := range p.brief.ContextPersonas {
		if persona, ok := p.byName[strings.ToLower(name)]; ok {
			found = append(found, persona)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].GeoReach(p.brief.Geography) > found[j].GeoReach(p.brief.Geography)
	})
	for _, persona := range found {
		if len(p.selected) >= p.limit {
			return
		}
		p.add(persona, 90, "campaign context signal")
	}
}

// pickPlaybook applies the vertical's persona mapping with a 75/25 split
// between primary and secondary segments.
func (p *audiencePicker) pickPlaybook(entry domain.PlaybookEntry) {
	if entry.Personas == nil || len(p.selected) >= p.limit {
		return
	}
	remaining := p.limit - len(p.selected)
	primaryCount := remaining * 3 / 4
	if primaryCount < 1 {
		primaryCount = 1
	}

	taken := 0
	for _, name := range p.sortByReach(entry.Personas.Primary) {
		if taken >= primaryCount || len(p.selected) >= p.limit {
			break
		}
		if p.addByName(name, 85, "vertical primary persona") {
			taken++
		}
	}
	for _, name := range p.sortByReach(entry.Personas.Secondary) {
		if len(p.selected) >= p.limit {
			break
		}
		p.addByName(name, 70, "vertical secondary persona")
	}
}

func (p *audiencePicker) sortByReach(names []string) []string {
	out := append([]string(nil), names...)
	sort.SliceStable(out, func(i, j int) bool {
		pi, iok := p.byName[strings.ToLower(out[i])]
		pj, jok := p.byName[strings.ToLower(out[j])]
		if !jok {
			return iok
		}
		if !iok {
			return false
		}
		return pi.GeoReach(p.brief.Geography) > pj.GeoReach(p.brief.Geography)
	})
	return out
}

func (p *audiencePicker) pickIndustryFallback() {
	if len(p.selected) >= p.limit {
		return
	}
	for _, fb := range industryFallbackPersonas {
		if !fb.pattern.MatchString(p.brief.Industry) {
			continue
		}
		for _, name := range fb.personas {
			if len(p.selected) >= p.limit {
				return
			}
			p.addByName(name, 75, "core segment for "+p.brief.Industry)
		}
		return
	}
}

func (p *audiencePicker) pickInterestMatch(personas []domain.AudiencePersona) {
	if len(p.selected) >= p.limit || p.brief.Industry == "" {
		return
	}
	for _, persona := range personas {
		if len(p.selected) >= p.limit {
			return
		}
		for _, interest := range persona.Interests {
			if containsFold(p.brief.Industry, interest) || containsFold(interest, p.brief.Industry) {
				p.add(persona, 60, "interest matches "+p.brief.Industry)
				break
			}
		}
	}
}

func (p *audiencePicker) pickTopReach(personas []domain.AudiencePersona) {
	if len(p.selected) >= p.limit {
		return
	}
	sorted := append([]domain.AudiencePersona(nil), personas...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GeoReach(p.brief.Geography) > sorted[j].GeoReach(p.brief.Geography)
	})
	for _, persona := range sorted {
		if len(p.selected) >= p.limit {
			return
		}
		p.add(persona, 50, "largest available reach")
	}
}

// forceWhitelist pulls in explicitly requested personas even when the
// cascade passed them over, dropping the weakest non-whitelisted pick
// when the selection is full.
func (p *audiencePicker) forceWhitelist(personas []domain.AudiencePersona) {
	for _, term := range p.brief.Whitelist {
		var match *domain.AudiencePersona
		for i := range personas {
			if containsFold(personas[i].Name, term) || containsFold(term, personas[i].Name) {
				match = &personas[i]
				break
			}
		}
		if match == nil || p.blacklisted(match.Name) {
			continue
		}
		key := strings.ToLower(match.Name)
		if p.have[key] {
			p.whitelisted[key] = true
			continue
		}
		if len(p.selected) >= p.limit {
			p.evictWeakest()
		}
		if p.add(*match, 95, "explicitly requested") {
			p.whitelisted[key] = true
		}
	}
}

func (p *audiencePicker) evictWeakest() {
	weakest := -1
	for i, a := range p.selected {
		if p.whitelisted[strings.ToLower(a.Name)] {
			continue
		}
		if weakest == -1 || a.GeoReachScore < p.selected[weakest].GeoReachScore {
			weakest = i
		}
	}
	if weakest == -1 {
		return
	}
	delete(p.have, strings.ToLower(p.selected[weakest].Name))
	p.selected = append(p.selected[:weakest], p.selected[weakest+1:]...)
}
