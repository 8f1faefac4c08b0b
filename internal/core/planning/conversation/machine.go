// Package conversation drives the turn-by-turn dialogue that fills a
// campaign brief. Each turn runs extraction, resolves at most one pending
// clarification, and either asks the next question or reports that the
// brief is complete enough to generate a plan.
package conversation

import (
	"fmt"

	"planwise/internal/core/domain"
	"planwise/internal/core/planning/extract"
)

// State is the coarse dialogue phase. It is advisory; the brief itself is
// the source of truth for what is still missing.
type State string

const (
	StateGathering State = "gathering"
	StateScenario  State = "scenario"
	StateClarify   State = "clarifying"
	StateReady     State = "ready"
	StateGenerated State = "generated"
)

// Conversation is the mutable dialogue context for one advertiser session.
type Conversation struct {
	State       State
	Brief       *domain.CampaignBrief
	BudgetAsked bool
}

func NewConversation() *Conversation {
	return &Conversation{State: StateGathering, Brief: domain.NewBrief()}
}

// Outcome is the result of one turn. When Generate is set the caller runs
// the planning pipeline; Reply carries the question or acknowledgement to
// show otherwise.
type Outcome struct {
	Reply    string
	Generate bool
}

// Machine applies the dialogue policy: one clarification per turn, each
// topic asked at most once, unanswered topics resolved with defaults.
type Machine struct {
	extractor *extract.Extractor
}

func New(extractor *extract.Extractor) *Machine {
	return &Machine{extractor: extractor}
}

var clarificationOrder = []domain.ClarificationTopic{
	domain.TopicChannelPreference,
	domain.TopicCreativeAssets,
	domain.TopicGeography,
	domain.TopicDuration,
	domain.TopicBuyingType,
}

// Turn processes one user message against the conversation.
func (m *Machine) Turn(c *Conversation, text string) Outcome {
	b := c.Brief

	captureLists(b, text)

	ch := m.extractor.Extract(text, b)
	ch.Apply(b)

	// a reply to the scenario menu always resolves the budget, the
	// recommended tier is the default when the pick is unclear
	if c.State == StateScenario && b.Budget == 0 {
		sc := scenariosFor(b)
		pick := pickScenario(text)
		b.Budget = sc[pick].Amount
		b.ExtractionLog = append(b.ExtractionLog,
			fmt.Sprintf("Budget: RM %d (%s scenario)", b.Budget, sc[pick].Label))
	}

	resolveAsked(b, text)

	if b.ProductBrand == "" && b.Objective == "" && b.Industry == "" {
		c.State = StateGathering
		return Outcome{Reply: msgTellMeMore}
	}

	if b.Budget == 0 {
		if b.NeedsBudgetSuggestion || c.BudgetAsked {
			c.State = StateScenario
			b.ScenariosShown = true
			return Outcome{Reply: renderScenarios(b, scenariosFor(b))}
		}
		c.BudgetAsked = true
		c.State = StateGathering
		return Outcome{Reply: msgAskBudget}
	}

	if topic, ok := nextClarification(b); ok {
		b.SetClarification(topic, domain.ClarificationAsked)
		c.State = StateClarify
		return Outcome{Reply: questionFor(topic)}
	}

	applyDefaults(b)
	c.State = StateReady
	return Outcome{Generate: true}
}

// resolveAsked settles a topic that was asked last turn. Extraction has
// already run, so a parseable answer is in the brief by now; anything
// still empty gets its default so a topic is never asked twice.
func resolveAsked(b *domain.CampaignBrief, text string) {
	for _, t := range clarificationOrder {
		if b.Clarification(t) != domain.ClarificationAsked {
			continue
		}
		switch t {
		case domain.TopicChannelPreference:
			if b.ChannelPreference == "" {
				b.ChannelPreference = parseChannelAnswer(text)
			}
			b.SetClarification(t, domain.ClarificationAnswered)
		case domain.TopicCreativeAssets:
			if b.CreativeAsset == "" {
				if asset, ok := parseCreativeAnswer(text); ok {
					b.CreativeAsset = asset
					b.SetClarification(t, domain.ClarificationAnswered)
				} else {
					b.CreativeAsset = domain.CreativeHybrid
					b.SetClarification(t, domain.ClarificationDefaulted)
				}
			} else {
				b.SetClarification(t, domain.ClarificationAnswered)
			}
		case domain.TopicGeography:
			if len(b.Geography) == 0 {
				b.Geography = []string{domain.GeoNationwide}
				b.SetClarification(t, domain.ClarificationDefaulted)
			} else {
				b.SetClarification(t, domain.ClarificationAnswered)
			}
		case domain.TopicDuration:
			if b.DurationWeeks == 0 {
				b.DurationWeeks = 4
				b.SetClarification(t, domain.ClarificationDefaulted)
			} else {
				b.SetClarification(t, domain.ClarificationAnswered)
			}
		case domain.TopicBuyingType:
			if b.BuyingType == "" {
				if bt, ok := parseBuyingAnswer(text); ok {
					b.BuyingType = bt
					b.SetClarification(t, domain.ClarificationAnswered)
				} else {
					b.BuyingType = domain.BuyMixed
					b.SetClarification(t, domain.ClarificationDefaulted)
				}
			} else {
				b.SetClarification(t, domain.ClarificationAnswered)
			}
		}
	}
}

// nextClarification returns the first topic still worth asking. Topics
// whose field arrived through free text are marked answered and skipped.
func nextClarification(b *domain.CampaignBrief) (domain.ClarificationTopic, bool) {
	for _, t := range clarificationOrder {
		if b.Clarification(t) != domain.ClarificationUnasked {
			continue
		}
		known := false
		switch t {
		case domain.TopicChannelPreference:
			known = b.ChannelPreference != ""
		case domain.TopicCreativeAssets:
			known = b.CreativeAsset != ""
		case domain.TopicGeography:
			known = len(b.Geography) > 0
		case domain.TopicDuration:
			known = b.DurationWeeks > 0
		case domain.TopicBuyingType:
			known = b.BuyingType != ""
		}
		if known {
			b.SetClarification(t, domain.ClarificationAnswered)
			continue
		}
		return t, true
	}
	return "", false
}

// applyDefaults fills every remaining optional field right before
// generation so the planner never sees an incomplete brief.
func applyDefaults(b *domain.CampaignBrief) {
	if b.Objective == "" {
		b.Objective = inferObjective(b)
		b.ExtractionLog = append(b.ExtractionLog, fmt.Sprintf("Objective: %s (inferred)", b.Objective))
	}
	if b.Industry == "" {
		b.Industry = "Generic"
	}
	if len(b.Geography) == 0 {
		b.Geography = []string{domain.GeoNationwide}
	}
	if b.DurationWeeks == 0 {
		b.DurationWeeks = 4
	}
	if len(b.Devices) == 0 {
		b.Devices = defaultDevices(b)
	}
	if b.BuyingType == "" {
		b.BuyingType = domain.BuyMixed
	}
	if b.Priority == "" {
		switch b.Objective {
		case domain.ObjectiveAwareness, domain.ObjectiveVideoView:
			b.Priority = domain.PriorityMaxReach
		case domain.ObjectiveLeadGen, domain.ObjectiveTraffic:
			b.Priority = domain.PriorityPerformance
		default:
			b.Priority = domain.PriorityBalanced
		}
	}
	if b.ChannelPreference == "" {
		b.ChannelPreference = domain.ChannelBalanced
	}
	if b.CreativeAsset == "" {
		b.CreativeAsset = domain.CreativeHybrid
	}
}

// inferObjective derives an objective from the industry when the user
// never stated one. Brand-led verticals default to awareness, considered
// purchases to consideration.
func inferObjective(b *domain.CampaignBrief) domain.Objective {
	switch b.Industry {
	case "Banking":
		return domain.ObjectiveConsideration
	case "FMCG", "Fashion Retail", "Property", "Automotive":
		return domain.ObjectiveAwareness
	}
	return domain.ObjectiveAwareness
}

func defaultDevices(b *domain.CampaignBrief) []string {
	if b.Objective == domain.ObjectiveVideoView && b.Budget > 100_000 {
		return []string{"CTV", "Mobile", "Desktop"}
	}
	switch b.Industry {
	case "FMCG", "Fashion Retail":
		return []string{"Mobile", "Desktop"}
	case "Banking", "Property":
		return []string{"Desktop", "Mobile"}
	}
	return []string{"Mobile", "Desktop"}
}
