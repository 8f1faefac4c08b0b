package extract

import (
	"regexp"

	"planwise/internal/core/domain"
)

// objectiveRule classifies an utterance into a campaign objective. Rules
// are evaluated in order; the first match wins. An exclude pattern vetoes
// the match, which keeps "I'm selling bottled water" from being read as a
// sales objective.
type objectiveRule struct {
	match     *regexp.Regexp
	exclude   *regexp.Regexp
	objective domain.Objective
	note      string
}

var objectiveRules = []objectiveRule{
	{
		match:     regexp.MustCompile(`(?i)awareness|launch|visibility|introduce|announce|branding|brand recall|reach|make noise|eyeballs|know about`),
		objective: domain.ObjectiveAwareness,
		note:      "Objective: Awareness",
	},
	{
		match:     regexp.MustCompile(`(?i)trial|try\b|usage|adopt|consider|interest|explore|sample|drive usage|product usage`),
		objective: domain.ObjectiveConsideration,
		note:      "Objective: Consideration (trial/usage)",
	},
	{
		match:     regexp.MustCompile(`(?i)traffic|visit|clicks?|website|online store|ecomm|e-?commerce|drive to site|web traffic`),
		objective: domain.ObjectiveTraffic,
		note:      "Objective: Traffic",
	},
	{
		match:     regexp.MustCompile(`(?i)engagement|interact|participate|time spent|dwell|engage with`),
		objective: domain.ObjectiveEngagement,
		note:      "Objective: Engagement",
	},
	{
		match:     regexp.MustCompile(`(?i)leads?\b|sign.?ups?|registration|form\b|enquir|generate lead|collect contact|test.?drive|appointment|demo\b`),
		objective: domain.ObjectiveLeadGen,
		note:      "Objective: Lead Generation",
	},
	{
		match:     regexp.MustCompile(`(?i)\b(sales|purchase|buy|order|revenue|transaction)\b`),
		exclude:   regexp.MustCompile(`(?i)i'?m? selling|we'?re? selling|selling [a-z]`),
		objective: domain.ObjectiveTraffic,
		note:      "Objective: Drive Sales (traffic strategy)",
	},
	{
		match:     regexp.MustCompile(`(?i)video view|watch|vtr|view rate|video completion`),
		objective: domain.ObjectiveVideoView,
		note:      "Objective: Video Views",
	},
}

// productPatterns pull a product or brand phrase out of common sentence
// shapes. Capture group 1 is the candidate phrase.
var productPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:selling|sell|launch|promote|marketing)\s+([a-z\s]+?)(?:\s*,|\s+campaign|\s+product|\s+brand|\.|\s+don'?t)`),
	regexp.MustCompile(`(?i)(?:for|of|our|the|new)\s+([a-z\s]+?)\s+(?:campaign|product|brand)`),
	regexp.MustCompile(`(?i)^([a-z\s]+?)\s+(?:campaign|launch|promotion)`),
}

var productVeto = regexp.MustCompile(`(?i)budget|fix|mind|money|cost|price`)

// budget parsing
var (
	budgetRMPattern         = regexp.MustCompile(`(?i)\brm\s*([\d,]+(?:\.\d+)?)\s*(k)?`)
	budgetStandaloneK       = regexp.MustCompile(`(?i)\b([\d,]+)\s*k\b`)
	budgetPlainNumber       = regexp.MustCompile(`\b(\d[\d,]{3,})\b`)
	budgetSmallPattern      = regexp.MustCompile(`(?i)small budget|limited budget|tight budget|low budget`)
	budgetLargePattern      = regexp.MustCompile(`(?i)big budget|large budget|high budget|premium budget`)
	budgetMediumPattern     = regexp.MustCompile(`(?i)medium budget|moderate budget|average budget`)
	budgetUncertainPattern  = regexp.MustCompile(`(?i)not sure|don'?t know|no budget|unsure|don'?t have.*budget|no fix.*budget|haven'?t.*budget|budget.*mind|propose|suggest|recommend budget|what budget|how much|you.*recommend`)
	budgetQualitativeAmount = map[string]int64{"small": 50_000, "medium": 100_000, "large": 200_000}
)

// regionRule expands a regional phrase into its member states.
type regionRule struct {
	match  *regexp.Regexp
	states []string
	note   string
}

var regionRules = []regionRule{
	{
		match:  regexp.MustCompile(`(?i)nationwide|national|all\s+states|whole\s+malaysia|across\s+malaysia|entire\s+country`),
		states: []string{domain.GeoNationwide},
		note:   "Geography: Nationwide (Malaysia)",
	},
	{
		match:  regexp.MustCompile(`(?i)\bnorth(ern)?\b|utara|penang\s+region`),
		states: []string{"Penang", "Kedah", "Perlis", "Perak"},
		note:   "Geography: Northern Region (Penang, Kedah, Perlis, Perak)",
	},
	{
		match:  regexp.MustCompile(`(?i)\bsouth(ern)?\b|jb\s+region|singapore\s+belt`),
		states: []string{"Johor", "Melaka", "Negeri Sembilan"},
		note:   "Geography: Southern Region (Johor, Melaka, Negeri Sembilan)",
	},
	{
		match:  regexp.MustCompile(`(?i)east\s+coast|eastern\s+coast|pantai\s+timur`),
		states: []string{"Kelantan", "Terengganu", "Pahang"},
		note:   "Geography: East Coast (Kelantan, Terengganu, Pahang)",
	},
	{
		match:  regexp.MustCompile(`(?i)east\s+malaysia|borneo|malaysia\s+timur|sabah|sarawak`),
		states: []string{"Sabah", "Sarawak", "Labuan"},
		note:   "Geography: East Malaysia (Sabah, Sarawak, Labuan)",
	},
	{
		match:  regexp.MustCompile(`(?i)central|klang\s+valley|greater\s+kl|urban\s+malaysia`),
		states: []string{"Kuala Lumpur", "Selangor", "Putrajaya"},
		note:   "Geography: Central Region (KL, Selangor, Putrajaya)",
	},
	{
		match: regexp.MustCompile(`(?i)peninsula|west\s+malaysia|semenanjung|mainland\s+malaysia`),
		states: []string{
			"Kuala Lumpur", "Selangor", "Putrajaya", "Johor", "Melaka",
			"Negeri Sembilan", "Penang", "Kedah", "Perlis", "Perak",
			"Kelantan", "Terengganu", "Pahang",
		},
		note: "Geography: Peninsular Malaysia (13 states)",
	},
}

// stateAliases maps a lowercase mention to the canonical state name.
var stateAliases = map[string]string{
	"johor": "Johor", "kedah": "Kedah", "kelantan": "Kelantan",
	"melaka": "Melaka", "malacca": "Melaka", "negeri sembilan": "Negeri Sembilan",
	"pahang": "Pahang", "penang": "Penang", "pulau pinang": "Penang",
	"perak": "Perak", "perlis": "Perlis", "sabah": "Sabah",
	"sarawak": "Sarawak", "selangor": "Selangor", "terengganu": "Terengganu",
	"kuala lumpur": "Kuala Lumpur", "putrajaya": "Putrajaya", "labuan": "Labuan",
}

var klPattern = regexp.MustCompile(`(?i)\bkl\b`)

// deviceRule maps device mentions to the canonical device name.
type deviceRule struct {
	match  *regexp.Regexp
	device string
}

var deviceRules = []deviceRule{
	{regexp.MustCompile(`(?i)\btv\b|ctv|connected tv|smart tv|big screen|\bott\b|streaming tv`), "CTV"},
	{regexp.MustCompile(`(?i)mobile|phone|smartphone|\bapp\b|in-app|on the go`), "Mobile"},
	{regexp.MustCompile(`(?i)desktop|computer|laptop|\bpc\b`), "Desktop"},
}

// audienceRule maps loose audience descriptors to a display hint.
type audienceRule struct {
	match *regexp.Regexp
	hint  string
}

var audienceGate = regexp.MustCompile(`(?i)audience|target|people|consumers|customers|segment`)

var audienceRules = []audienceRule{
	{regexp.MustCompile(`(?i)young|youth|millennial|gen z|18-35|students`), "Young Adults (18-35)"},
	{regexp.MustCompile(`(?i)professional|working|office|executive|business`), "Professionals"},
	{regexp.MustCompile(`(?i)family|parents|household|married`), "Families/Parents"},
	{regexp.MustCompile(`(?i)women|female|ladies|moms`), "Women"},
	{regexp.MustCompile(`(?i)\bmen\b|\bmale\b|guys|dads`), "Men"},
}

var durationPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(week|wk|month|mth)`)

// channelPrefRule picks up an explicit channel focus stated in free text,
// e.g. "focus on OTT". A focus cue is required so a passing mention of a
// platform does not lock the preference.
type channelPrefRule struct {
	match *regexp.Regexp
	pref  domain.ChannelPreference
	note  string
}

var channelFocusGate = regexp.MustCompile(`(?i)focus|prioriti[sz]e|mainly|mostly|heavy on|emphasi|\bonly\b`)

var channelPrefRules = []channelPrefRule{
	{regexp.MustCompile(`(?i)\bott\b|streaming|ctv|connected tv`), domain.ChannelOTT, "Channel focus: OTT/Streaming"},
	{regexp.MustCompile(`(?i)social|facebook|instagram|tiktok`), domain.ChannelSocial, "Channel focus: Social"},
	{regexp.MustCompile(`(?i)display|banner|programmatic`), domain.ChannelDisplay, "Channel focus: Display"},
}

// buyingTypeRule maps buying vocabulary to a buy type. Premium wording
// implies guaranteed direct inventory.
type buyingTypeRule struct {
	match *regexp.Regexp
	bt    domain.BuyingType
	note  string
}

var buyingTypeRules = []buyingTypeRule{
	{regexp.MustCompile(`(?i)premium|homepage|takeover|sponsorship|guaranteed|direct`), domain.BuyDirect, "Buy Type: Direct (premium)"},
	{regexp.MustCompile(`(?i)programmatic guaranteed|\bpg\b|private marketplace|pmp`), domain.BuyPG, "Buy Type: PG"},
	{regexp.MustCompile(`(?i)programmatic|\bpd\b|open auction|rtb`), domain.BuyPD, "Buy Type: PD"},
}

type priorityRule struct {
	match    *regexp.Regexp
	priority domain.Priority
	note     string
}

var priorityRules = []priorityRule{
	{regexp.MustCompile(`(?i)max reach|maximum reach|scale|mass\b|volume|many people|wide reach`), domain.PriorityMaxReach, "Priority: Max Reach"},
	{regexp.MustCompile(`(?i)performance|efficiency|roi|conversion|results|targeted`), domain.PriorityPerformance, "Priority: Performance"},
	{regexp.MustCompile(`(?i)cost.?effective|cheap|low.?cpm|affordable|efficient`), domain.PriorityMaxReach, "Priority: Cost-Effective (Max Reach)"},
}
