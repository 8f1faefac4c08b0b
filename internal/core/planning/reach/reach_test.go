package reach

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planwise/internal/core/domain"
)

func audience(name string, reach int64) domain.ScoredAudience {
	return domain.ScoredAudience{
		AudiencePersona: domain.AudiencePersona{Name: name},
		GeoReachScore:   reach,
	}
}

func TestEstimate_SameCategoryPair(t *testing.T) {
	unique, sum := Estimate([]domain.ScoredAudience{
		audience("Movie Buffs", 1_000_000),
		audience("Music Lovers", 1_000_000),
	})

	// entertainment personas overlap heavily: 2M minus 0.75 of the
	// smaller reach
	assert.Equal(t, int64(2_000_000), sum)
	assert.Equal(t, int64(1_250_000), unique)
}

func TestEstimate_CrossCategoryPair(t *testing.T) {
	unique, _ := Estimate([]domain.ScoredAudience{
		audience("Corporate Visionaries", 800_000),
		audience("Luxury Seekers", 400_000),
	})

	// business and luxury share 45% of the smaller audience
	assert.Equal(t, int64(1_020_000), unique)
}

func TestEstimate_Bounds(t *testing.T) {
	selections := [][]domain.ScoredAudience{
		{audience("Foodies", 3_000_000)},
		{audience("Foodies", 3_000_000), audience("Fashion Icons", 2_000_000)},
		{
			audience("Foodies", 3_000_000),
			audience("Fashion Icons", 2_000_000),
			audience("Health & Wellness Shoppers", 2_500_000),
			audience("Gamers", 1_000_000),
		},
	}

	for _, sel := range selections {
		unique, sum := Estimate(sel)
		var max int64
		for _, a := range sel {
			if a.GeoReachScore > max {
				max = a.GeoReachScore
			}
		}
		assert.GreaterOrEqual(t, unique, max)
		assert.LessOrEqual(t, unique, sum)
	}
}

func TestEstimate_UnknownPersonaUsesBaseline(t *testing.T) {
	unique, _ := Estimate([]domain.ScoredAudience{
		audience("Mystery Segment", 1_000_000),
		audience("Another Segment", 1_000_000),
	})

	assert.Equal(t, int64(1_750_000), unique)
}

func TestEstimate_FallsBackToTotalReach(t *testing.T) {
	a := domain.ScoredAudience{
		AudiencePersona: domain.AudiencePersona{Name: "Foodies", TotalReach: 500_000},
	}
	unique, sum := Estimate([]domain.ScoredAudience{a})
	assert.Equal(t, int64(500_000), unique)
	assert.Equal(t, int64(500_000), sum)
}

func TestEstimate_Empty(t *testing.T) {
	unique, sum := Estimate(nil)
	assert.Zero(t, unique)
	assert.Zero(t, sum)
}
