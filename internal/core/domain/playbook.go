package domain

// FunnelStage positions an objective in the marketing funnel.
type FunnelStage string

const (
	StageAwareness     FunnelStage = "awareness"
	StageConsideration FunnelStage = "consideration"
	StageConversion    FunnelStage = "conversion"
)

// FunnelStageFor maps a campaign objective to its funnel stage.
func FunnelStageFor(o Objective) FunnelStage {
	switch o {
	case ObjectiveAwareness, ObjectiveVideoView:
		return StageAwareness
	case ObjectiveTraffic, ObjectiveEngagement, ObjectiveConsideration:
		return StageConsideration
	case ObjectiveLeadGen:
		return StageConversion
	default:
		return StageAwareness
	}
}

// VerticalConfig is the per-industry playbook entry: recommended format
// keywords per funnel stage plus the vertical's proven formats.
type VerticalConfig struct {
	Label       string                   `json:"label"`
	StrategyDNA string                   `json:"strategy_dna"`
	Funnel      map[FunnelStage][]string `json:"funnel"`
	BestFormats []string                 `json:"best_formats"`
	Watchouts   string                   `json:"watchouts,omitempty"`
}

// PersonaMapping lists the vertical's recommended personas in priority
// order.
type PersonaMapping struct {
	Primary   []string `json:"primary_personas"`
	Secondary []string `json:"secondary_personas"`
}

// PlaybookSource records how a playbook lookup was satisfied.
type PlaybookSource string

const (
	PlaybookIndustry PlaybookSource = "industry"
	PlaybookGeneric  PlaybookSource = "generic"
)

// PlaybookEntry is a resolved playbook lookup. Personas is nil when the
// vertical carries no persona mapping.
type PlaybookEntry struct {
	Key      string
	Config   VerticalConfig
	Personas *PersonaMapping
	Source   PlaybookSource
}
