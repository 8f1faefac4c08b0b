package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/core/domain"
)

func testPersonas() []domain.AudiencePersona {
	return []domain.AudiencePersona{
		{Name: "Foodies", TotalReach: 5_000_000, Interests: []string{"F&B"}},
		{Name: "Family Dynamic", TotalReach: 6_000_000},
		{Name: "Muslim Households", TotalReach: 4_000_000},
		{Name: "Beauty Enthusiasts", TotalReach: 2_000_000, Interests: []string{"Beauty"}},
		{Name: "Fashion Icons", TotalReach: 2_500_000},
		{Name: "Young Working Adult", TotalReach: 3_500_000},
		{Name: "Luxury Seekers", TotalReach: 1_000_000},
	}
}

func audienceNames(selected []domain.ScoredAudience) []string {
	names := make([]string, len(selected))
	for i, a := range selected {
		names[i] = a.Name
	}
	return names
}

func TestSelectAudiences_ContextPersonasWinFirst(t *testing.T) {
	brief := domain.NewBrief()
	brief.ContextPersonas = []string{"Muslim Households", "Family Dynamic"}

	selected := SelectAudiences(brief, testPersonas(), domain.PlaybookEntry{}, 2)

	require.Len(t, selected, 2)
	assert.Equal(t, []string{"Family Dynamic", "Muslim Households"}, audienceNames(selected))
	assert.Equal(t, 90, selected[0].Confidence)
}

func TestSelectAudiences_PlaybookSplit(t *testing.T) {
	brief := domain.NewBrief()
	entry := domain.PlaybookEntry{
		Personas: &domain.PersonaMapping{
			Primary:   []string{"Beauty Enthusiasts", "Fashion Icons", "Young Working Adult"},
			Secondary: []string{"Luxury Seekers", "Foodies"},
		},
	}

	selected := SelectAudiences(brief, testPersonas(), entry, 4)

	require.Len(t, selected, 4)
	assert.ElementsMatch(t,
		[]string{"Beauty Enthusiasts", "Fashion Icons", "Young Working Adult", "Foodies"},
		audienceNames(selected))
}

func TestSelectAudiences_BlacklistExcludes(t *testing.T) {
	brief := domain.NewBrief()
	brief.Blacklist = []string{"fashion"}
	entry := domain.PlaybookEntry{
		Personas: &domain.PersonaMapping{
			Primary: []string{"Fashion Icons", "Beauty Enthusiasts"},
		},
	}

	selected := SelectAudiences(brief, testPersonas(), entry, 2)

	require.Len(t, selected, 2)
	assert.NotContains(t, audienceNames(selected), "Fashion Icons")
	assert.Contains(t, audienceNames(selected), "Beauty Enthusiasts")
}

func TestSelectAudiences_WhitelistEvictsWeakestPick(t *testing.T) {
	brief := domain.NewBrief()
	brief.Whitelist = []string{"luxury"}

	selected := SelectAudiences(brief, testPersonas(), domain.PlaybookEntry{}, 2)

	require.Len(t, selected, 2)
	assert.Contains(t, audienceNames(selected), "Luxury Seekers")
	assert.Contains(t, audienceNames(selected), "Family Dynamic")
}

func TestSelectAudiences_IndustryFallback(t *testing.T) {
	brief := domain.NewBrief()
	brief.Industry = "Beauty & Cosmetics"

	selected := SelectAudiences(brief, testPersonas(), domain.PlaybookEntry{}, 3)

	require.Len(t, selected, 3)
	assert.ElementsMatch(t,
		[]string{"Beauty Enthusiasts", "Fashion Icons", "Young Working Adult"},
		audienceNames(selected))
}

func TestSelectAudiences_RegionalReachDrivesSelection(t *testing.T) {
	personas := []domain.AudiencePersona{
		{Name: "Urban Streamers", TotalReach: 5_000_000, ReachByState: map[string]int64{"Penang": 100_000}},
		{Name: "Northern Families", TotalReach: 2_000_000, ReachByState: map[string]int64{"Penang": 800_000}},
	}
	brief := domain.NewBrief()
	brief.Geography = []string{"Penang"}

	selected := SelectAudiences(brief, personas, domain.PlaybookEntry{}, 1)

	require.Len(t, selected, 1)
	assert.Equal(t, "Northern Families", selected[0].Name)
	assert.Equal(t, int64(800_000), selected[0].GeoReachScore)
}

func TestSelectAudiences_SortedByReachAndCapped(t *testing.T) {
	brief := domain.NewBrief()

	selected := SelectAudiences(brief, testPersonas(), domain.PlaybookEntry{}, 3)

	require.Len(t, selected, 3)
	assert.Equal(t, []string{"Family Dynamic", "Foodies", "Muslim Households"}, audienceNames(selected))
	for i := 1; i < len(selected); i++ {
		assert.GreaterOrEqual(t, selected[i-1].GeoReachScore, selected[i].GeoReachScore)
	}
}
