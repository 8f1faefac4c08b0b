// Package reach estimates deduplicated audience reach. Personas overlap
// by interest category, so summing their reach double-counts; the model
// discounts each pair by a category-derived overlap factor.
package reach

import "planwise/internal/core/domain"

// personaCategories buckets personas by their dominant interest. Personas
// in the same bucket share most of their audience.
var personaCategories = map[string][]string{
	"Entertainment": {"Entertainment", "Movie Buffs", "Music Lovers", "Romantic Comedy", "K-Drama Fans"},
	"Sports":        {"Sports Enthusiasts", "Football Fans", "Badminton Followers", "Active Lifestyle Seekers"},
	"Lifestyle":     {"Foodies", "Travel & Experience Seekers", "Fashion Icons", "Health & Wellness Shoppers", "Beauty Enthusiasts"},
	"Technology":    {"Tech Early Adopters", "Gamers", "Online Shoppers", "Gadget Hunters"},
	"Automotive":    {"Car Enthusiasts", "New Car Intenders"},
	"Business":      {"Corporate Visionaries", "SME Owners", "Young Working Adult", "Investors"},
	"Luxury":        {"Luxury Seekers", "Emerging Affluents", "Premium Lifestyle"},
	"Family":        {"Family Dynamic", "Muslim Households", "Parents of Young Kids"},
	"Life Stage":    {"Youth Mom", "Newlyweds", "Students", "Retirees"},
	"Home & Living": {"Home Improvers", "Property Hunters", "Home Chefs"},
}

var categoryOf = func() map[string]string {
	m := make(map[string]string)
	for cat, members := range personaCategories {
		for _, name := range members {
			m[name] = cat
		}
	}
	return m
}()

// sameCategoryOverlap is the pairwise overlap within one category.
var sameCategoryOverlap = map[string]float64{
	"Entertainment": 0.75,
	"Sports":        0.75,
	"Lifestyle":     0.60,
	"Technology":    0.60,
}

// crossCategoryOverlap lists category pairs with above-baseline overlap.
var crossCategoryOverlap = map[[2]string]float64{
	{"Sports", "Lifestyle"}:         0.55,
	{"Business", "Luxury"}:          0.45,
	{"Entertainment", "Technology"}: 0.30,
	{"Lifestyle", "Technology"}:     0.30,
}

const (
	defaultSameOverlap  = 0.50
	defaultCrossOverlap = 0.25
)

// overlapFactor returns the assumed shared-audience fraction for two
// personas.
func overlapFactor(a, b string) float64 {
	ca, cb := categoryOf[a], categoryOf[b]
	if ca == "" || cb == "" {
		return defaultCrossOverlap
	}
	if ca == cb {
		if v, ok := sameCategoryOverlap[ca]; ok {
			return v
		}
		return defaultSameOverlap
	}
	if v, ok := crossCategoryOverlap[[2]string{ca, cb}]; ok {
		return v
	}
	if v, ok := crossCategoryOverlap[[2]string{cb, ca}]; ok {
		return v
	}
	return defaultCrossOverlap
}

// Estimate returns the deduplicated reach and the naive sum for a persona
// selection. Each pair is discounted by min(reach) times its overlap
// factor; with more than two personas the pairwise total overstates the
// shared audience, so it decays by 2/n. The result is clamped between the
// largest single persona and the naive sum.
func Estimate(audiences []domain.ScoredAudience) (unique, simpleSum int64) {
	if len(audiences) == 0 {
		return 0, 0
	}

	var maxReach int64
	reaches := make([]int64, len(audiences))
	for i, a := range audiences {
		r := a.GeoReachScore
		if r == 0 {
			r = a.TotalReach
		}
		reaches[i] = r
		simpleSum += r
		if r > maxReach {
			maxReach = r
		}
	}

	var overlap float64
	for i := 0; i < len(audiences); i++ {
		for j := i + 1; j < len(audiences); j++ {
			shared := reaches[i]
			if reaches[j] < shared {
				shared = reaches[j]
			}
			overlap += float64(shared) * overlapFactor(audiences[i].Name, audiences[j].Name)
		}
	}
	if n := len(audiences); n > 2 {
		overlap *= 2 / float64(n)
	}

	unique = simpleSum - int64(overlap)
	if unique < maxReach {
		unique = maxReach
	}
	if unique > simpleSum {
		unique = simpleSum
	}
	return unique, simpleSum
}
