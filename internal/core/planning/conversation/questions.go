package conversation

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"planwise/internal/core/domain"
)

const (
	msgTellMeMore = "Tell me a bit about the product and what you want this campaign to achieve."
	msgAskBudget  = "What budget are you working with? If you're undecided I can suggest a few scenarios."
)

func questionFor(t domain.ClarificationTopic) string {
	switch t {
	case domain.TopicChannelPreference:
		return "Any channel you'd like to lead with?\n" +
			"1. OTT / Streaming\n" +
			"2. Social-style placements\n" +
			"3. Display across premium sites\n" +
			"4. Balanced mix (recommended)"
	case domain.TopicCreativeAssets:
		return "What creative assets do you have ready? Video, static visuals, or both?"
	case domain.TopicGeography:
		return "Should this run nationwide, or focus on specific states or regions?"
	case domain.TopicDuration:
		return "How long should the campaign run? Typical flights are 4 weeks."
	case domain.TopicBuyingType:
		return "Do you prefer direct deals, programmatic buying, or a mix of both?"
	}
	return ""
}

// budgetScenario is one entry of the three-tier budget menu shown when the
// advertiser cannot name a number.
type budgetScenario struct {
	Label  string
	Amount int64
	Note   string
}

var (
	highTicketIndustries  = regexp.MustCompile(`(?i)automotive|property|banking|finance|insurance`)
	performanceIndustries = regexp.MustCompile(`(?i)e-?commerce|telco|e-?wallet`)
	peakSeasons           = map[domain.SeasonalContext]bool{
		domain.SeasonCNY:       true,
		domain.SeasonRaya:      true,
		domain.SeasonDeepavali: true,
	}
)

// scenariosFor sizes the menu to the vertical. High-ticket verticals need
// heavier investment to move, performance verticals can start leaner.
// Festive windows inflate all tiers because inventory is more contested.
func scenariosFor(b *domain.CampaignBrief) [3]budgetScenario {
	base := [3]int64{50_000, 100_000, 200_000}
	switch {
	case highTicketIndustries.MatchString(b.Industry):
		base = [3]int64{100_000, 200_000, 400_000}
	case performanceIndustries.MatchString(b.Industry):
		base = [3]int64{40_000, 80_000, 150_000}
	}

	mult := 1.0
	if b.Seasonal != "" {
		mult = 1.3
		if peakSeasons[b.Seasonal] {
			mult = 1.5
		}
	}

	var sc [3]budgetScenario
	labels := [3]string{"Efficient", "Recommended", "Premium"}
	notes := [3]string{
		"lean reach, concentrated on the most efficient channels",
		"balanced mix with room for video",
		"full-funnel presence including premium placements",
	}
	for i := range sc {
		sc[i] = budgetScenario{
			Label:  labels[i],
			Amount: roundTo10k(float64(base[i]) * mult),
			Note:   notes[i],
		}
	}
	return sc
}

func roundTo10k(v float64) int64 {
	return int64(math.Round(v/10_000)) * 10_000
}

func renderScenarios(b *domain.CampaignBrief, sc [3]budgetScenario) string {
	var sb strings.Builder
	sb.WriteString("Here are three budget scenarios")
	if b.Industry != "" {
		fmt.Fprintf(&sb, " for %s", b.Industry)
	}
	sb.WriteString(":\n")
	for i, s := range sc {
		fmt.Fprintf(&sb, "%d. %s: RM %s (%s)\n", i+1, s.Label, formatRM(s.Amount), s.Note)
	}
	sb.WriteString("Which one should I plan around? Option 2 is what I'd recommend.")
	return sb.String()
}

func formatRM(v int64) string {
	s := fmt.Sprintf("%d", v)
	n := len(s)
	if n <= 3 {
		return s
	}
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (n-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

var (
	scenarioEfficientPattern = regexp.MustCompile(`(?i)efficient|option\s*1|first|1st|cheapest|smallest|^\s*1\b`)
	scenarioPremiumPattern   = regexp.MustCompile(`(?i)premium|option\s*3|third|3rd|biggest|largest|^\s*3\b`)
)

// pickScenario maps a free-text reply onto a menu index. Anything unclear
// lands on the recommended middle tier.
func pickScenario(text string) int {
	switch {
	case scenarioEfficientPattern.MatchString(text):
		return 0
	case scenarioPremiumPattern.MatchString(text):
		return 2
	default:
		return 1
	}
}

var (
	channelOTTAnswer     = regexp.MustCompile(`(?i)^\s*1\b|ott|stream|ctv`)
	channelSocialAnswer  = regexp.MustCompile(`(?i)^\s*2\b|social|feed|story`)
	channelDisplayAnswer = regexp.MustCompile(`(?i)^\s*3\b|display|banner`)
)

func parseChannelAnswer(text string) domain.ChannelPreference {
	switch {
	case channelOTTAnswer.MatchString(text):
		return domain.ChannelOTT
	case channelSocialAnswer.MatchString(text):
		return domain.ChannelSocial
	case channelDisplayAnswer.MatchString(text):
		return domain.ChannelDisplay
	default:
		return domain.ChannelBalanced
	}
}

var (
	buyingMixedAnswer  = regexp.MustCompile(`(?i)mix|both|combo|hybrid|blend`)
	buyingDirectAnswer = regexp.MustCompile(`(?i)direct|guaranteed|sponsorship|premium`)
	buyingProgAnswer   = regexp.MustCompile(`(?i)programmatic|\bpd\b|\bpg\b|auction|rtb`)
)

// parseBuyingAnswer reads a reply to the buying-preference question. The
// mixed wording wins so "a mix of direct and programmatic" lands on Mixed.
func parseBuyingAnswer(text string) (domain.BuyingType, bool) {
	switch {
	case buyingMixedAnswer.MatchString(text):
		return domain.BuyMixed, true
	case buyingDirectAnswer.MatchString(text):
		return domain.BuyDirect, true
	case buyingProgAnswer.MatchString(text):
		return domain.BuyPD, true
	}
	return "", false
}

var (
	creativeVideoPattern       = regexp.MustCompile(`(?i)video|tvc|motion|animation|reel|footage`)
	creativeStaticPattern      = regexp.MustCompile(`(?i)static|banner|image|visual|jpe?g|png|key\s*visual|\bkv\b`)
	creativeInteractivePattern = regexp.MustCompile(`(?i)interactive|rich\s*media|playable`)
	creativeBothPattern        = regexp.MustCompile(`(?i)\bboth\b|everything|all of`)
)

func parseCreativeAnswer(text string) (domain.CreativeAsset, bool) {
	video := creativeVideoPattern.MatchString(text)
	static := creativeStaticPattern.MatchString(text)
	switch {
	case creativeBothPattern.MatchString(text) || (video && static):
		return domain.CreativeHybrid, true
	case creativeInteractivePattern.MatchString(text):
		return domain.CreativeInteractive, true
	case video:
		return domain.CreativeVideo, true
	case static:
		return domain.CreativeStatic, true
	}
	return "", false
}

var (
	blacklistPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:don'?t|do not|not|no)\s+want\s+(?:any\s+)?([a-z0-9 &/-]+)`),
		regexp.MustCompile(`(?i)(?:exclude|remove|drop|avoid|blacklist)\s+(?:the\s+)?([a-z0-9 &/-]+)`),
	}
	whitelistPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:must include|definitely include|please include|make sure .*? includes?)\s+(?:the\s+)?([a-z0-9 &/-]+)`),
	}
	listSplitPattern = regexp.MustCompile(`(?i)\s*(?:,|\band\b|\bor\b)\s*`)
)

// captureLists pulls audience exclusions and forced inclusions from the
// utterance. These accumulate across turns rather than overwrite.
func captureLists(b *domain.CampaignBrief, text string) {
	for _, p := range blacklistPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			b.Blacklist = appendTerms(b.Blacklist, m[1])
		}
	}
	for _, p := range whitelistPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			b.Whitelist = appendTerms(b.Whitelist, m[1])
		}
	}
}

func appendTerms(list []string, raw string) []string {
	for _, term := range listSplitPattern.Split(raw, -1) {
		term = strings.TrimSpace(strings.Trim(term, ".!?"))
		if term == "" {
			continue
		}
		dup := false
		for _, have := range list {
			if strings.EqualFold(have, term) {
				dup = true
				break
			}
		}
		if !dup {
			list = append(list, term)
		}
	}
	return list
}
