package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/core/domain"
)

func testSites() []domain.PublisherSite {
	return []domain.PublisherSite{
		{Name: "Astro Gempak", Category: "OTT", MonthlyTraffic: 12_000_000},
		{Name: "Berita Harian", Category: "Web", MonthlyTraffic: 8_000_000},
		{Name: "Sinar Online", Category: "Web", MonthlyTraffic: 6_000_000},
		{Name: "Tonton", Category: "OTT", MonthlyTraffic: 9_000_000},
		{Name: "Sabah Post", Category: "Web", MonthlyTraffic: 1_500_000},
		{Name: "MotorTrader", Category: "Web", MonthlyTraffic: 2_000_000, Industry: "Automotive"},
		{Name: "MegaPortal", Category: "Web", MonthlyTraffic: 15_000_000},
	}
}

func ottFormats() []domain.ScoredFormat {
	return []domain.ScoredFormat{
		{AdFormat: domain.AdFormat{Name: "In-stream Video", Category: "OTT"}},
	}
}

func TestScoreSites_NationalCampaign(t *testing.T) {
	brief := domain.NewBrief()
	brief.Geography = []string{domain.GeoNationwide}

	scored := ScoreSites(brief, testSites(), ottFormats())
	require.Len(t, scored, len(testSites()))

	// category fit plus top traffic puts the OTT giant first
	assert.Equal(t, "Astro Gempak", scored[0].Name)
	assert.False(t, scored[0].Regional)
}

func TestScoreSites_RegionalBoost(t *testing.T) {
	brief := domain.NewBrief()
	brief.Geography = []string{"Sabah", "Sarawak"}

	scored := ScoreSites(brief, testSites(), nil)

	var sabahPost domain.ScoredSite
	for _, s := range scored {
		if s.Name == "Sabah Post" {
			sabahPost = s
		}
	}
	assert.True(t, sabahPost.Regional)
	assert.Contains(t, sabahPost.Reason, "Sabah")
}

func TestScoreSites_IndustryAffinity(t *testing.T) {
	brief := domain.NewBrief()
	brief.Industry = "Automotive"

	scored := ScoreSites(brief, testSites(), nil)

	var motor, sinar int
	for _, s := range scored {
		switch s.Name {
		case "MotorTrader":
			motor = s.Confidence
		case "Sinar Online":
			sinar = s.Confidence
		}
	}
	// affinity outweighs the traffic gap
	assert.Greater(t, motor, sinar-15)
}

func TestSelectSites_CapsAtFive(t *testing.T) {
	brief := domain.NewBrief()
	scored := ScoreSites(brief, testSites(), nil)

	selected := SelectSites(brief, scored)
	assert.Len(t, selected, 5)
}

func TestSelectSites_CulturalLeadsWithVernacular(t *testing.T) {
	brief := domain.NewBrief()
	brief.Cultural = domain.CultureMalay

	scored := ScoreSites(brief, testSites(), nil)
	selected := SelectSites(brief, scored)

	require.Len(t, selected, 5)
	names := make([]string, len(selected))
	for i, s := range selected {
		names[i] = s.Name
	}
	// vernacular titles come first, premium entertainment fills behind
	assert.Contains(t, names[:2], "Berita Harian")
	assert.Contains(t, names[:2], "Sinar Online")
	assert.Contains(t, selected[0].Reason, "vernacular")
}
