// Package playbook serves the embedded vertical playbook: per-industry
// strategy configuration and persona mappings. The data ships inside the
// binary so the engine keeps planning when the database is empty.
package playbook

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"planwise/internal/core/domain"
)

//go:embed playbook.json
var playbookJSON []byte

const genericKey = "generic"

// industryAliases normalizes free-form industry labels onto playbook keys.
var industryAliases = map[string]string{
	"fmcg":                "fmcg",
	"beauty & cosmetics":  "beauty_cosmetics",
	"beauty":              "beauty_cosmetics",
	"cosmetics":           "beauty_cosmetics",
	"automotive":          "automotive",
	"property":            "property",
	"real estate":         "property",
	"banking":             "banking",
	"banking & finance":   "banking",
	"finance":             "banking",
	"insurance":           "banking",
	"retail & e-commerce": "retail_ecommerce",
	"e-commerce":          "retail_ecommerce",
	"fashion retail":      "retail_ecommerce",
	"premium retail":      "retail_ecommerce",
	"e-wallet":            "retail_ecommerce",
	"telco":               "telco",
	"telecommunications":  "telco",
	"f&b":                 "f_b",
	"f&b (halal)":         "f_b",
	"food & beverage":     "f_b",
	"health & wellness":   "f_b",
	"travel & tourism":    "travel_tourism",
	"travel":              "travel_tourism",
	"tourism":             "travel_tourism",
}

// matchPatterns detect a vertical from raw conversation text.
var matchPatterns = []struct {
	pattern *regexp.Regexp
	key     string
}{
	{regexp.MustCompile(`(?i)skincare|makeup|cosmetic|perfume|fragrance|beauty`), "beauty_cosmetics"},
	{regexp.MustCompile(`(?i)\bcar\b|vehicle|suv\b|sedan|automotive|test.?drive`), "automotive"},
	{regexp.MustCompile(`(?i)property|condo|apartment|residence|developer`), "property"},
	{regexp.MustCompile(`(?i)\bbank\b|credit card|loan|insurance|takaful|invest`), "banking"},
	{regexp.MustCompile(`(?i)e-?commerce|online store|marketplace|retail sale`), "retail_ecommerce"},
	{regexp.MustCompile(`(?i)telco|postpaid|prepaid|broadband|\b5g\b|data plan`), "telco"},
	{regexp.MustCompile(`(?i)restaurant|beverage|drink|snack|food brand|\bf&b\b`), "f_b"},
	{regexp.MustCompile(`(?i)travel|tourism|holiday package|airline|hotel`), "travel_tourism"},
	{regexp.MustCompile(`(?i)detergent|shampoo|toothpaste|household goods|\bfmcg\b`), "fmcg"},
}

type playbookFile struct {
	Verticals map[string]verticalEntry         `json:"vertical_playbook"`
	Personas  map[string]domain.PersonaMapping `json:"persona_mapping"`
}

type verticalEntry struct {
	Label       string                          `json:"label"`
	StrategyDNA string                          `json:"strategy_dna"`
	Funnel      map[domain.FunnelStage][]string `json:"funnel"`
	Creative    struct {
		BestFormats []string `json:"best_formats"`
	} `json:"creative_requirements"`
	Watchouts string `json:"watchouts"`
}

// Provider is the in-binary PlaybookProvider implementation.
type Provider struct {
	verticals map[string]domain.VerticalConfig
	personas  map[string]domain.PersonaMapping
}

// New parses the embedded playbook. It fails only on a corrupt embed,
// which is a build defect rather than a runtime condition.
func New() (*Provider, error) {
	var file playbookFile
	if err := json.Unmarshal(playbookJSON, &file); err != nil {
		return nil, fmt.Errorf("parse embedded playbook: %w", err)
	}
	if _, ok := file.Verticals[genericKey]; !ok {
		return nil, fmt.Errorf("embedded playbook lacks the %q fallback", genericKey)
	}

	p := &Provider{
		verticals: make(map[string]domain.VerticalConfig, len(file.Verticals)),
		personas:  file.Personas,
	}
	for key, v := range file.Verticals {
		p.verticals[key] = domain.VerticalConfig{
			Label:       v.Label,
			StrategyDNA: v.StrategyDNA,
			Funnel:      v.Funnel,
			BestFormats: v.Creative.BestFormats,
			Watchouts:   v.Watchouts,
		}
	}
	return p, nil
}

// Lookup resolves an industry label to its playbook entry, falling back
// to the generic configuration for unknown verticals.
func (p *Provider) Lookup(industry string) domain.PlaybookEntry {
	key := strings.ToLower(strings.TrimSpace(industry))
	if alias, ok := industryAliases[key]; ok {
		key = alias
	}
	if cfg, ok := p.verticals[key]; ok {
		return p.entry(key, cfg, domain.PlaybookIndustry)
	}
	return p.entry(genericKey, p.verticals[genericKey], domain.PlaybookGeneric)
}

// Match scans free text for vertical signals. The boolean reports whether
// a specific vertical matched; the generic fallback never matches.
func (p *Provider) Match(text string) (domain.PlaybookEntry, bool) {
	for _, m := range matchPatterns {
		if m.pattern.MatchString(text) {
			if cfg, ok := p.verticals[m.key]; ok {
				return p.entry(m.key, cfg, domain.PlaybookIndustry), true
			}
		}
	}
	return domain.PlaybookEntry{}, false
}

func (p *Provider) entry(key string, cfg domain.VerticalConfig, source domain.PlaybookSource) domain.PlaybookEntry {
	e := domain.PlaybookEntry{Key: key, Config: cfg, Source: source}
	if pm, ok := p.personas[key]; ok {
		e.Personas = &pm
	}
	return e
}
