package domain

// Objective is the primary campaign goal extracted from conversation.
type Objective string

const (
	ObjectiveAwareness     Objective = "Awareness"
	ObjectiveConsideration Objective = "Consideration"
	ObjectiveTraffic       Objective = "Traffic"
	ObjectiveEngagement    Objective = "Engagement"
	ObjectiveLeadGen       Objective = "LeadGen"
	ObjectiveVideoView     Objective = "VideoView"
)

// BuyingType identifies how inventory is purchased.
type BuyingType string

const (
	BuyDirect BuyingType = "Direct"
	BuyPG     BuyingType = "PG"
	BuyPD     BuyingType = "PD"
	BuyMixed  BuyingType = "Mixed"
)

// Priority steers CPM sorting during allocation.
type Priority string

const (
	PriorityMaxReach    Priority = "Max Reach"
	PriorityPerformance Priority = "Performance"
	PriorityBalanced    Priority = "Balanced"
)

// ChannelPreference is an explicit channel focus stated by the user.
type ChannelPreference string

const (
	ChannelOTT      ChannelPreference = "OTT"
	ChannelSocial   ChannelPreference = "Social"
	ChannelDisplay  ChannelPreference = "Display"
	ChannelBalanced ChannelPreference = "Balanced"
)

// CreativeAsset describes the creative material the advertiser has.
type CreativeAsset string

const (
	CreativeVideo       CreativeAsset = "video"
	CreativeStatic      CreativeAsset = "static"
	CreativeInteractive CreativeAsset = "interactive"
	CreativeHybrid      CreativeAsset = "hybrid"
)

// SeasonalContext tags a festive or seasonal campaign window.
type SeasonalContext string

const (
	SeasonCNY            SeasonalContext = "cny"
	SeasonRaya           SeasonalContext = "raya"
	SeasonDeepavali      SeasonalContext = "deepavali"
	SeasonGawai          SeasonalContext = "gawai"
	SeasonValentines     SeasonalContext = "valentines"
	SeasonMothersDay     SeasonalContext = "mothers_day"
	SeasonFestiveGeneral SeasonalContext = "festive_general"
)

// CulturalContext tags the dominant cultural audience for a campaign.
type CulturalContext string

const (
	CultureMalay        CulturalContext = "malay"
	CultureChinese      CulturalContext = "chinese"
	CultureIndian       CulturalContext = "indian"
	CultureSabahSarawak CulturalContext = "sabah_sarawak"
)

// ClarificationTopic keys the planning-relevant questions the state
// machine may pose. Each is asked at most once per conversation.
type ClarificationTopic string

const (
	TopicChannelPreference ClarificationTopic = "channel_preference"
	TopicCreativeAssets    ClarificationTopic = "creative_assets"
	TopicGeography         ClarificationTopic = "geography"
	TopicDuration          ClarificationTopic = "duration"
	TopicBuyingType        ClarificationTopic = "buying_type"
)

// ClarificationState tracks the lifecycle of one clarification topic.
type ClarificationState int

const (
	ClarificationUnasked ClarificationState = iota
	ClarificationAsked
	ClarificationAnswered
	ClarificationDefaulted
)

// GeoNationwide is the sentinel geography entry for a national campaign.
const GeoNationwide = "Malaysia"

// CampaignBrief is the structured representation of a campaign's
// requirements, built up turn by turn from conversation. Budget is in
// whole RM; zero means not yet known.
type CampaignBrief struct {
	ProductBrand string
	Objective    Objective
	Industry     string
	IndustryKey  string // normalized playbook key, when resolved via playbook

	Budget                int64
	BudgetQualifier       string // small, medium, large when inferred from wording
	NeedsBudgetSuggestion bool
	ScenariosShown        bool

	Geography     []string
	DurationWeeks int
	Devices       []string
	BuyingType    BuyingType
	Priority      Priority

	ChannelPreference ChannelPreference
	CreativeAsset     CreativeAsset

	Seasonal        SeasonalContext
	Cultural        CulturalContext
	ContextPersonas []string
	AudienceHint    string

	Blacklist []string
	Whitelist []string

	Clarifications map[ClarificationTopic]ClarificationState
	ExtractionLog  []string
}

// NewBrief returns an empty brief ready for the first turn.
func NewBrief() *CampaignBrief {
	return &CampaignBrief{
		Clarifications: make(map[ClarificationTopic]ClarificationState),
	}
}

// Clarification returns the state of a topic, ClarificationUnasked when the
// topic has never been touched.
func (b *CampaignBrief) Clarification(t ClarificationTopic) ClarificationState {
	if b.Clarifications == nil {
		return ClarificationUnasked
	}
	return b.Clarifications[t]
}

// SetClarification records a topic transition.
func (b *CampaignBrief) SetClarification(t ClarificationTopic, s ClarificationState) {
	if b.Clarifications == nil {
		b.Clarifications = make(map[ClarificationTopic]ClarificationState)
	}
	b.Clarifications[t] = s
}

// Nationwide reports whether the brief targets the whole country, either
// explicitly or because no geography was given.
func (b *CampaignBrief) Nationwide() bool {
	if len(b.Geography) == 0 {
		return true
	}
	for _, g := range b.Geography {
		if g == GeoNationwide {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Turns operate on a copy so a superseded
// request can be discarded without touching the conversation's brief.
func (b *CampaignBrief) Clone() *CampaignBrief {
	c := *b
	c.Geography = append([]string(nil), b.Geography...)
	c.Devices = append([]string(nil), b.Devices...)
	c.ContextPersonas = append([]string(nil), b.ContextPersonas...)
	c.Blacklist = append([]string(nil), b.Blacklist...)
	c.Whitelist = append([]string(nil), b.Whitelist...)
	c.ExtractionLog = append([]string(nil), b.ExtractionLog...)
	c.Clarifications = make(map[ClarificationTopic]ClarificationState, len(b.Clarifications))
	for k, v := range b.Clarifications {
		c.Clarifications[k] = v
	}
	return &c
}
