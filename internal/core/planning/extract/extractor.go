// Package extract turns one user utterance plus the current brief state
// into a set of field updates. Matching is a prioritized battery of rule
// tables evaluated first-match-wins per field; extraction never fails,
// unmatched fields are simply absent from the result.
package extract

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"planwise/internal/core/domain"
	"planwise/internal/core/port"
)

// Changes is the partial-update map produced by one extraction pass. Zero
// values mean "no update". Apply merges it into a brief without ever
// overwriting an already-known field.
type Changes struct {
	ProductBrand string
	Objective    domain.Objective
	Industry     string
	IndustryKey  string

	Budget                int64
	BudgetQualifier       string
	NeedsBudgetSuggestion bool

	Geography         []string
	Devices           []string
	AudienceHint      string
	DurationWeeks     int
	BuyingType        domain.BuyingType
	Priority          domain.Priority
	ChannelPreference domain.ChannelPreference

	Seasonal        domain.SeasonalContext
	Cultural        domain.CulturalContext
	ContextPersonas []string

	Log []string
}

// Extractor runs the extraction battery. The playbook is consulted only as
// the industry fallback when context-aware inference finds nothing.
type Extractor struct {
	playbook port.PlaybookProvider
}

func New(playbook port.PlaybookProvider) *Extractor {
	return &Extractor{playbook: playbook}
}

// Extract parses text against the current brief. Fields already known in
// the brief are skipped, except seasonal/cultural context and the
// budget-uncertainty flag, which are re-evaluated on every message.
func (e *Extractor) Extract(text string, brief *domain.CampaignBrief) Changes {
	var ch Changes

	if brief.ProductBrand == "" {
		e.extractProduct(text, &ch)
	}
	if brief.Objective == "" {
		e.extractObjective(text, &ch)
	}

	pc := detectProductContext(text)
	if pc.seasonal != "" && brief.Seasonal == "" {
		ch.Seasonal = pc.seasonal
		ch.Log = append(ch.Log, fmt.Sprintf("Seasonal: %s", pc.seasonal))
	}
	if pc.cultural != "" && brief.Cultural == "" {
		ch.Cultural = pc.cultural
		ch.Log = append(ch.Log, fmt.Sprintf("Cultural: %s", pc.cultural))
	}

	if brief.Industry == "" {
		e.extractIndustry(text, pc, &ch)
	}
	if brief.Budget == 0 {
		e.extractBudget(text, &ch)
	} else if budgetUncertainPattern.MatchString(text) {
		ch.NeedsBudgetSuggestion = true
	}
	if len(brief.Geography) == 0 {
		e.extractGeography(text, &ch)
	}
	if len(brief.Devices) == 0 {
		e.extractDevices(text, &ch)
	}
	if brief.AudienceHint == "" && audienceGate.MatchString(text) {
		for _, r := range audienceRules {
			if r.match.MatchString(text) {
				ch.AudienceHint = r.hint
				ch.Log = append(ch.Log, "Audience: "+r.hint)
				break
			}
		}
	}

	// Duration is parsed only once its clarification has been asked, so
	// free text cannot pre-empt the explicit question.
	if brief.DurationWeeks == 0 && brief.Clarification(domain.TopicDuration) != domain.ClarificationUnasked {
		if weeks, ok := parseDuration(text); ok {
			ch.DurationWeeks = weeks
			ch.Log = append(ch.Log, fmt.Sprintf("Duration: %d weeks", weeks))
		}
	}

	if brief.ChannelPreference == "" && channelFocusGate.MatchString(text) {
		for _, r := range channelPrefRules {
			if r.match.MatchString(text) {
				ch.ChannelPreference = r.pref
				ch.Log = append(ch.Log, r.note)
				break
			}
		}
	}
	if brief.BuyingType == "" {
		for _, r := range buyingTypeRules {
			if r.match.MatchString(text) {
				ch.BuyingType = r.bt
				ch.Log = append(ch.Log, r.note)
				break
			}
		}
	}
	if brief.Priority == "" {
		for _, r := range priorityRules {
			if r.match.MatchString(text) {
				ch.Priority = r.priority
				ch.Log = append(ch.Log, r.note)
				break
			}
		}
	}

	return ch
}

func (e *Extractor) extractProduct(text string, ch *Changes) {
	for _, p := range productPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		product := strings.TrimSpace(m[1])
		if len(product) <= 2 || len(product) >= 30 || productVeto.MatchString(product) {
			continue
		}
		ch.ProductBrand = product
		ch.Log = append(ch.Log, "Product: "+product)
		return
	}
}

func (e *Extractor) extractObjective(text string, ch *Changes) {
	for _, r := range objectiveRules {
		if !r.match.MatchString(text) {
			continue
		}
		if r.exclude != nil && r.exclude.MatchString(text) {
			continue
		}
		ch.Objective = r.objective
		ch.Log = append(ch.Log, r.note)
		return
	}
}

// extractIndustry prefers context-aware inference over the playbook's
// keyword table; the playbook is the fallback, and the hard default is
// left to the state machine.
func (e *Extractor) extractIndustry(text string, pc productContext, ch *Changes) {
	if industry, ok := inferIndustry(text, pc); ok {
		ch.Industry = industry
		ch.Log = append(ch.Log, fmt.Sprintf("Industry: %s (context)", industry))
		if len(pc.personas) > 0 {
			ch.ContextPersonas = append([]string(nil), pc.personas...)
		}
		return
	}
	if entry, ok := e.playbook.Match(text); ok {
		ch.Industry = entry.Config.Label
		ch.IndustryKey = entry.Key
		ch.Log = append(ch.Log, fmt.Sprintf("Industry: %s (playbook: %s)", entry.Config.Label, entry.Key))
	} else if len(pc.personas) > 0 {
		// no industry yet, but context personas are still worth keeping
		ch.ContextPersonas = append([]string(nil), pc.personas...)
	}
}

func (e *Extractor) extractBudget(text string, ch *Changes) {
	if m := budgetRMPattern.FindStringSubmatch(text); m != nil {
		ch.Budget = parseAmount(m[1], m[2] != "")
	} else if m := budgetStandaloneK.FindStringSubmatch(text); m != nil {
		ch.Budget = parseAmount(m[1], true)
	} else if m := budgetPlainNumber.FindStringSubmatch(text); m != nil {
		ch.Budget = parseAmount(m[1], false)
	}
	if ch.Budget > 0 {
		ch.Log = append(ch.Log, fmt.Sprintf("Budget: RM %d", ch.Budget))
		return
	}

	switch {
	case budgetSmallPattern.MatchString(text):
		ch.BudgetQualifier = "small"
	case budgetLargePattern.MatchString(text):
		ch.BudgetQualifier = "large"
	case budgetMediumPattern.MatchString(text):
		ch.BudgetQualifier = "medium"
	}
	if ch.BudgetQualifier != "" {
		ch.Budget = budgetQualitativeAmount[ch.BudgetQualifier]
		ch.Log = append(ch.Log, fmt.Sprintf("Budget: %s (~RM %d assumed)", ch.BudgetQualifier, ch.Budget))
		return
	}

	if budgetUncertainPattern.MatchString(text) {
		ch.NeedsBudgetSuggestion = true
		ch.Log = append(ch.Log, "Budget: user needs a suggestion")
	}
}

func parseAmount(raw string, thousands bool) int64 {
	raw = strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0
	}
	if thousands {
		v *= 1000
	}
	return int64(math.Round(v))
}

func (e *Extractor) extractGeography(text string, ch *Changes) {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var states []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			states = append(states, name)
		}
	}

	if klPattern.MatchString(text) {
		add("Kuala Lumpur")
	}
	for alias, canonical := range stateAliases {
		if strings.Contains(lower, alias) {
			add(canonical)
		}
	}
	for _, r := range regionRules {
		if r.match.MatchString(text) {
			for _, s := range r.states {
				add(s)
			}
			ch.Log = append(ch.Log, r.note)
		}
	}
	if len(states) > 0 {
		ch.Geography = states
	}
}

func (e *Extractor) extractDevices(text string, ch *Changes) {
	var devices []string
	for _, r := range deviceRules {
		if r.match.MatchString(text) {
			devices = append(devices, r.device)
		}
	}
	if len(devices) > 0 {
		ch.Devices = devices
		ch.Log = append(ch.Log, "Devices: "+strings.Join(devices, ", "))
	}
}

func parseDuration(text string) (int, bool) {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil || num <= 0 {
		return 0, false
	}
	unit := strings.ToLower(m[2])
	if strings.HasPrefix(unit, "month") || strings.HasPrefix(unit, "mth") {
		num *= 4
	}
	weeks := int(math.Round(num))
	if weeks < 1 {
		weeks = 1
	}
	return weeks, true
}

// Apply merges the changes into the brief. Known fields are never
// overwritten, which makes repeated application of the same extraction
// idempotent.
func (ch Changes) Apply(b *domain.CampaignBrief) {
	if ch.ProductBrand != "" && b.ProductBrand == "" {
		b.ProductBrand = ch.ProductBrand
	}
	if ch.Objective != "" && b.Objective == "" {
		b.Objective = ch.Objective
	}
	if ch.Industry != "" && b.Industry == "" {
		b.Industry = ch.Industry
		b.IndustryKey = ch.IndustryKey
	}
	if ch.Budget > 0 && b.Budget == 0 {
		b.Budget = ch.Budget
		b.BudgetQualifier = ch.BudgetQualifier
	}
	if ch.NeedsBudgetSuggestion {
		b.NeedsBudgetSuggestion = true
	}
	if len(ch.Geography) > 0 && len(b.Geography) == 0 {
		b.Geography = ch.Geography
	}
	if len(ch.Devices) > 0 && len(b.Devices) == 0 {
		b.Devices = ch.Devices
	}
	if ch.AudienceHint != "" && b.AudienceHint == "" {
		b.AudienceHint = ch.AudienceHint
	}
	if ch.DurationWeeks > 0 && b.DurationWeeks == 0 {
		b.DurationWeeks = ch.DurationWeeks
	}
	if ch.BuyingType != "" && b.BuyingType == "" {
		b.BuyingType = ch.BuyingType
	}
	if ch.Priority != "" && b.Priority == "" {
		b.Priority = ch.Priority
	}
	if ch.ChannelPreference != "" && b.ChannelPreference == "" {
		b.ChannelPreference = ch.ChannelPreference
		b.SetClarification(domain.TopicChannelPreference, domain.ClarificationAnswered)
	}
	if ch.Seasonal != "" && b.Seasonal == "" {
		b.Seasonal = ch.Seasonal
	}
	if ch.Cultural != "" && b.Cultural == "" {
		b.Cultural = ch.Cultural
	}
	if len(ch.ContextPersonas) > 0 && len(b.ContextPersonas) == 0 {
		b.ContextPersonas = ch.ContextPersonas
	}
	b.ExtractionLog = append(b.ExtractionLog, ch.Log...)
}
