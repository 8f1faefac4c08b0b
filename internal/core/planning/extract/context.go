package extract

import (
	"regexp"

	"planwise/internal/core/domain"
)

// productContext is the always-on sub-extraction: product attributes,
// seasonal windows and cultural signals are re-evaluated on every message
// because they can appear at any point in the conversation.
type productContext struct {
	attributes []string
	cultural   domain.CulturalContext
	seasonal   domain.SeasonalContext
	personas   []string
}

func (pc productContext) hasAttribute(a string) bool {
	for _, v := range pc.attributes {
		if v == a {
			return true
		}
	}
	return false
}

type attributeRule struct {
	match     *regexp.Regexp
	attribute string
	cultural  domain.CulturalContext
	personas  []string
}

var attributeRules = []attributeRule{
	{
		match:     regexp.MustCompile(`(?i)halal|syariah|shariah|islamic`),
		attribute: "halal",
		cultural:  domain.CultureMalay,
		personas:  []string{"Muslim Households", "Family Dynamic"},
	},
	{
		match:     regexp.MustCompile(`(?i)vegan|plant-based|organic|natural|health|wellness`),
		attribute: "health",
		personas:  []string{"Health & Wellness Shoppers", "Active Lifestyle Seekers", "Young Working Adult"},
	},
	{
		match:     regexp.MustCompile(`(?i)premium|luxury|high-end|exclusive|prestige`),
		attribute: "premium",
		personas:  []string{"Luxury Seekers", "Emerging Affluents", "Corporate Visionaries"},
	},
	{
		match:     regexp.MustCompile(`(?i)new brand|startup|launch`),
		attribute: "new_brand",
	},
	{
		match:     regexp.MustCompile(`(?i)e-?commerce|online store|webshop|marketplace`),
		attribute: "ecommerce",
		personas:  []string{"Online Shoppers"},
	},
}

type seasonalRule struct {
	match    *regexp.Regexp
	seasonal domain.SeasonalContext
	cultural domain.CulturalContext
	// personas replace any attribute-derived list: the festive audience is
	// the dominant signal during a festival window.
	personas []string
}

var seasonalRules = []seasonalRule{
	{
		match:    regexp.MustCompile(`(?i)chinese new year|\bcny\b|lunar new year|imlek`),
		seasonal: domain.SeasonCNY,
		cultural: domain.CultureChinese,
		personas: []string{"Entertainment", "Family Dynamic", "Foodies", "Travel & Experience Seekers", "Online Shoppers"},
	},
	{
		match:    regexp.MustCompile(`(?i)\braya\b|hari raya|\beid\b|ramadan|lebaran|puasa`),
		seasonal: domain.SeasonRaya,
		cultural: domain.CultureMalay,
		personas: []string{"Muslim Households", "Family Dynamic", "Foodies", "Fashion Icons"},
	},
	{
		match:    regexp.MustCompile(`(?i)deepavali|diwali|festival of lights`),
		seasonal: domain.SeasonDeepavali,
		cultural: domain.CultureIndian,
		personas: []string{"Family Dynamic", "Entertainment", "Foodies"},
	},
	{
		match:    regexp.MustCompile(`(?i)gawai|harvest festival`),
		seasonal: domain.SeasonGawai,
		cultural: domain.CultureSabahSarawak,
		personas: []string{"Family Dynamic", "Travel & Experience Seekers"},
	},
	{
		match:    regexp.MustCompile(`(?i)valentine'?s?(\s*day)?|\bv-?day\b`),
		seasonal: domain.SeasonValentines,
		personas: []string{"Romantic Comedy", "Young Working Adult"},
	},
	{
		match:    regexp.MustCompile(`(?i)mother'?s day`),
		seasonal: domain.SeasonMothersDay,
		personas: []string{"Family Dynamic", "Young Working Adult", "Youth Mom"},
	},
}

var festiveGeneralPattern = regexp.MustCompile(`(?i)festive|celebration|gifting|gift\b|hamper`)

func detectProductContext(text string) productContext {
	var pc productContext
	for _, r := range attributeRules {
		if !r.match.MatchString(text) {
			continue
		}
		pc.attributes = append(pc.attributes, r.attribute)
		if r.cultural != "" && pc.cultural == "" {
			pc.cultural = r.cultural
		}
		pc.personas = append(pc.personas, r.personas...)
	}
	for _, r := range seasonalRules {
		if !r.match.MatchString(text) {
			continue
		}
		pc.seasonal = r.seasonal
		if r.cultural != "" {
			pc.cultural = r.cultural
		}
		pc.personas = append([]string(nil), r.personas...)
		break
	}
	if pc.seasonal == "" && festiveGeneralPattern.MatchString(text) {
		pc.seasonal = domain.SeasonFestiveGeneral
		pc.personas = append(pc.personas, "Family Dynamic", "Emerging Affluents")
	}
	return pc
}

// industryRule infers an industry from product wording. These run before
// the playbook keyword fallback: context carries more signal than a
// generic alias table, so it wins when both match.
type industryRule struct {
	match    *regexp.Regexp
	industry string
}

var industryRules = []industryRule{
	{regexp.MustCompile(`(?i)water|juice|drink|beverage|food|snack|chocolate|candy|milk|coffee|tea\b|restaurant|cafe`), "F&B"},
	{regexp.MustCompile(`(?i)perfume|fragrance|cologne|skincare|makeup|cosmetics|lipstick|foundation|mascara|beauty|facial|serum|moisturizer|cleanser`), "Beauty & Cosmetics"},
	{regexp.MustCompile(`(?i)paint|coating|laundry|detergent|soap|shampoo|toothpaste|tissue|household|cleaning|batteries|diapers`), "FMCG"},
	{regexp.MustCompile(`(?i)\bbank\b|credit card|loan|insurance|invest|financ|saving|mortgage|deposit`), "Banking"},
	{regexp.MustCompile(`(?i)\bcar\b|vehicle|suv\b|sedan|automotive|ev\b`), "Automotive"},
	{regexp.MustCompile(`(?i)property|condo|apartment|house|residence|development`), "Property"},
	{regexp.MustCompile(`(?i)fashion|clothing|apparel`), "Fashion Retail"},
	{regexp.MustCompile(`(?i)\btech\b|gadget|electronic`), "Consumer Electronics"},
}

// inferIndustry applies context-aware inference. Product attributes refine
// or decide the label; keyword rules handle the common verticals.
func inferIndustry(text string, pc productContext) (string, bool) {
	for _, r := range industryRules {
		if r.match.MatchString(text) {
			industry := r.industry
			if industry == "F&B" && pc.hasAttribute("halal") {
				industry = "F&B (Halal)"
			}
			return industry, true
		}
	}
	if pc.hasAttribute("halal") {
		return "F&B (Halal)", true
	}
	if pc.hasAttribute("health") {
		return "Health & Wellness", true
	}
	if pc.hasAttribute("premium") {
		return "Premium Retail", true
	}
	if pc.hasAttribute("ecommerce") {
		return "E-commerce", true
	}
	return "", false
}
