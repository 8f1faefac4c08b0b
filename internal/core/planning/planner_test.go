package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/core/domain"
	"planwise/internal/core/port"
	"planwise/internal/core/port/mocks"
)

func testDatasets() *port.Datasets {
	return &port.Datasets{
		Rates: []domain.RateCardEntry{
			{Platform: "Astro GO", Pillar: "OTT", Format: "Pre-roll Video", Devices: []string{"CTV", "Mobile"}, CPMDirect: 45, CPMPG: 40, CPMPD: 35},
			{Platform: "Tonton", Pillar: "Video", Format: "In-stream Video", Devices: []string{"Mobile", "Desktop"}, CPMDirect: 30, CPMPD: 24},
			{Platform: "Berita Network", Pillar: "Display", Format: "Leaderboard Banner", Devices: []string{"Mobile", "Desktop"}, CPMDirect: 12, CPMPD: 8},
			{Platform: "Gempak", Pillar: "Social", Format: "Social Feed Story", Devices: []string{"Mobile"}, CPMDirect: 15},
			{Platform: "Syok", Pillar: "Native", Format: "Native Article", Devices: []string{"Mobile", "Desktop"}, CPMDirect: 10, CPMPD: 7},
		},
		Formats: []domain.AdFormat{
			{Name: "In-stream Video", Goal: "Awareness", Medium: "video", Category: "OTT", MonthlyAvailability: 18_000_000},
			{Name: "Homepage Takeover", Goal: "Awareness", Medium: "static", Category: "Web", MonthlyAvailability: 9_000_000},
			{Name: "Mobile Banner", Goal: "Traffic", Medium: "static", Category: "Web", MonthlyAvailability: 24_000_000},
			{Name: "Native Article", Goal: "Traffic", Medium: "static", Category: "Web", MonthlyAvailability: 16_000_000},
			{Name: "Vertical Video", Goal: "Awareness", Medium: "video", Category: "Social", MonthlyAvailability: 12_000_000},
		},
		Audiences: []domain.AudiencePersona{
			{Name: "Beauty Enthusiasts", TotalReach: 2_000_000},
			{Name: "Fashion Icons", TotalReach: 2_500_000},
			{Name: "Young Working Adult", TotalReach: 3_500_000},
			{Name: "Family Dynamic", TotalReach: 6_000_000},
		},
		Sites: []domain.PublisherSite{
			{Name: "Astro Gempak", Category: "OTT", MonthlyTraffic: 12_000_000},
			{Name: "Tonton", Category: "OTT", MonthlyTraffic: 9_000_000},
			{Name: "MegaPortal", Category: "Web", MonthlyTraffic: 15_000_000},
		},
	}
}

func completeBrief() *domain.CampaignBrief {
	b := domain.NewBrief()
	b.ProductBrand = "skincare line"
	b.Objective = domain.ObjectiveAwareness
	b.Industry = "Beauty & Cosmetics"
	b.Budget = 150_000
	b.Geography = []string{domain.GeoNationwide}
	b.DurationWeeks = 4
	b.Devices = []string{"Mobile", "Desktop"}
	b.BuyingType = domain.BuyMixed
	b.Priority = domain.PriorityMaxReach
	b.ChannelPreference = domain.ChannelOTT
	b.CreativeAsset = domain.CreativeHybrid
	return b
}

func TestGenerate_NotReadyWithoutRates(t *testing.T) {
	pb := mocks.NewMockPlaybookProvider(t)
	datasets := testDatasets()
	datasets.Rates = nil

	plan, err := Generate(completeBrief(), datasets, pb)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, port.ErrNotReady)
}

func TestGenerate_FullPlan(t *testing.T) {
	pb := mocks.NewMockPlaybookProvider(t)
	pb.EXPECT().Lookup("Beauty & Cosmetics").Return(domain.PlaybookEntry{
		Key: "beauty_cosmetics",
		Config: domain.VerticalConfig{
			Label: "Beauty & Cosmetics",
			Funnel: map[domain.FunnelStage][]string{
				domain.StageAwareness: {"Video"},
			},
			BestFormats: []string{"Vertical Video"},
		},
		Personas: &domain.PersonaMapping{
			Primary:   []string{"Beauty Enthusiasts", "Fashion Icons"},
			Secondary: []string{"Young Working Adult"},
		},
		Source: domain.PlaybookIndustry,
	}).Once()

	brief := completeBrief()
	plan, err := Generate(brief, testDatasets(), pb)
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, domain.TierMid, plan.Tier)
	assert.Equal(t, "Balanced Multi-Channel", plan.Strategy.Name)

	var sum, preferred int64
	for _, l := range plan.LineItems {
		sum += l.Budget
		if l.Pillar == "OTT" || l.Pillar == "Video" {
			preferred += l.Budget
		}
	}
	assert.Equal(t, brief.Budget, sum)
	assert.GreaterOrEqual(t, float64(preferred), 0.60*float64(sum))

	require.NotEmpty(t, plan.Formats)
	assert.LessOrEqual(t, len(plan.Formats), formatCapMid)
	// the OTT preference pulls video formats to the front
	assert.Contains(t, []string{"In-stream Video", "Vertical Video"}, plan.Formats[0].Name)

	require.NotEmpty(t, plan.Audiences)
	assert.LessOrEqual(t, len(plan.Audiences), plan.Strategy.AudienceLimit)

	require.NotEmpty(t, plan.Sites)
	assert.LessOrEqual(t, len(plan.Sites), 5)

	assert.Equal(t, brief.Budget, plan.Summary.TotalBudget)
	assert.Equal(t, brief.Budget/4, plan.Summary.WeeklyBudget)
	assert.GreaterOrEqual(t, plan.Summary.SimpleReachSum, plan.Summary.UniqueReach)
	assert.Positive(t, plan.Summary.TotalImpressions)
	assert.Positive(t, plan.Summary.AvgCPM)

	for _, w := range plan.Warnings {
		assert.NotEqual(t, domain.SeverityCritical, w.Severity)
	}
}

func TestGenerate_BriefSnapshotIsDetached(t *testing.T) {
	pb := mocks.NewMockPlaybookProvider(t)
	pb.EXPECT().Lookup("Beauty & Cosmetics").Return(domain.PlaybookEntry{}).Once()

	brief := completeBrief()
	plan, err := Generate(brief, testDatasets(), pb)
	require.NoError(t, err)

	brief.Geography[0] = "Johor"
	brief.Budget = 1
	assert.Equal(t, domain.GeoNationwide, plan.Brief.Geography[0])
	assert.Equal(t, int64(150_000), plan.Brief.Budget)
}

func TestInventoryWarnings_Grading(t *testing.T) {
	fmtWith := func(avail int64) domain.ScoredFormat {
		return domain.ScoredFormat{AdFormat: domain.AdFormat{MonthlyAvailability: avail}}
	}

	tests := []struct {
		name         string
		budget       int64
		availability []domain.ScoredFormat
		wantSeverity domain.WarningSeverity
		wantNone     bool
	}{
		{"ample inventory", 150_000, []domain.ScoredFormat{fmtWith(40_000_000)}, "", true},
		{"limited inventory", 150_000, []domain.ScoredFormat{fmtWith(6_000_000), fmtWith(3_000_000)}, domain.SeverityWarning, false},
		{"severe shortfall", 150_000, []domain.ScoredFormat{fmtWith(2_000_000), fmtWith(1_000_000)}, domain.SeverityCritical, false},
		{"no availability data", 150_000, []domain.ScoredFormat{fmtWith(0)}, "", true},
		{"small budget advisory", 15_000, []domain.ScoredFormat{fmtWith(40_000_000)}, domain.SeverityInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := inventoryWarnings(tt.budget, tt.availability)
			if tt.wantNone {
				assert.Empty(t, warnings)
				return
			}
			require.Len(t, warnings, 1)
			assert.Equal(t, tt.wantSeverity, warnings[0].Severity)
		})
	}
}

func TestGenerate_InventoryShortfallIsFlagged(t *testing.T) {
	pb := mocks.NewMockPlaybookProvider(t)
	pb.EXPECT().Lookup("Beauty & Cosmetics").Return(domain.PlaybookEntry{}).Once()

	datasets := testDatasets()
	for i := range datasets.Formats {
		datasets.Formats[i].MonthlyAvailability = 1_000_000
	}

	plan, err := Generate(completeBrief(), datasets, pb)
	require.NoError(t, err)
	require.NotNil(t, plan, "a shortfall must not block plan creation")

	var shortfall *domain.PlanWarning
	for i, w := range plan.Warnings {
		if w.Severity == domain.SeverityCritical {
			shortfall = &plan.Warnings[i]
		}
	}
	require.NotNil(t, shortfall)
	assert.Contains(t, shortfall.Message, "5.0M available")
	assert.Contains(t, shortfall.Message, "~30.0M requested")
	assert.Contains(t, shortfall.Message, "RM 25000")
}

func TestGenerate_EmptyAudiencesWarns(t *testing.T) {
	pb := mocks.NewMockPlaybookProvider(t)
	pb.EXPECT().Lookup("Beauty & Cosmetics").Return(domain.PlaybookEntry{}).Once()

	datasets := testDatasets()
	datasets.Audiences = nil
	plan, err := Generate(completeBrief(), datasets, pb)
	require.NoError(t, err)

	found := false
	for _, w := range plan.Warnings {
		if w.Message == "no audience personas available, plan runs untargeted" {
			found = true
		}
	}
	assert.True(t, found)
	assert.Zero(t, plan.Summary.UniqueReach)
}
