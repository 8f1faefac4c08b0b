package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedRate struct {
	platform     string
	pillar       string
	platformType string
	format       string
	devices      []string
	direct       float64
	pg           float64
	pd           float64
}

type seedFormat struct {
	name         string
	goal         string
	medium       string
	category     string
	platform     string
	availability int64
}

type seedPersona struct {
	name         string
	totalReach   int64
	reachByState map[string]int64
	interests    []string
}

type seedSite struct {
	name     string
	category string
	traffic  int64
	industry string
}

var seedRates = []seedRate{
	{"Astro GO", "OTT", "premium", "In-stream Video", []string{"CTV", "Mobile", "Desktop"}, 45, 40, 35},
	{"Sooka", "OTT", "premium", "In-stream Video", []string{"CTV", "Mobile"}, 38, 34, 30},
	{"Tonton", "Video", "premium", "In-stream Video", []string{"Mobile", "Desktop"}, 30, 27, 24},
	{"Astro Awani", "Video", "news", "Vertical Video", []string{"Mobile", "Desktop"}, 28, 25, 22},
	{"Gempak", "Social", "entertainment", "Social Feed Story", []string{"Mobile"}, 15, 13, 11},
	{"Syok", "Native", "audio", "Native Article", []string{"Mobile", "Desktop"}, 10, 9, 7},
	{"Berita Network", "Display", "news", "Leaderboard Banner", []string{"Mobile", "Desktop"}, 12, 10, 8},
	{"Sinar Harian", "Display", "news", "Mobile Banner", []string{"Mobile", "Desktop"}, 11, 9, 7},
	{"Sin Chew Daily", "Display", "news", "Leaderboard Banner", []string{"Mobile", "Desktop"}, 13, 11, 9},
	{"Malaysiakini", "Display", "news", "Native Article", []string{"Mobile", "Desktop"}, 14, 12, 10},
	{"Astro Radio Network", "Premium", "audio", "Homepage Takeover", []string{"Mobile", "Desktop"}, 55, 50, 0},
	{"Carlist Network", "Retargeting", "vertical", "Retargeting Banner", []string{"Mobile", "Desktop"}, 9, 8, 6},
}

var seedFormats = []seedFormat{
	{"In-stream Video", "awareness", "video", "OTT", "Astro GO", 48_000_000},
	{"Vertical Video", "awareness", "video", "Social", "Gempak", 30_000_000},
	{"Social Feed Story", "consideration", "video", "Social", "Gempak", 26_000_000},
	{"Homepage Takeover", "awareness", "static", "Web", "Astro", 4_000_000},
	{"Masthead", "awareness", "static", "Web", "Berita Network", 6_000_000},
	{"Leaderboard Banner", "consideration", "static", "Web", "Berita Network", 55_000_000},
	{"Mobile Banner", "consideration", "static", "Web", "Sinar Harian", 62_000_000},
	{"Native Article", "consideration", "static", "Web", "Syok", 24_000_000},
	{"Carousel", "consideration", "interactive", "Social", "Gempak", 18_000_000},
	{"Shoppable Banner", "conversion", "interactive", "Web", "Carlist Network", 9_000_000},
	{"Retargeting Banner", "conversion", "static", "Web", "Carlist Network", 21_000_000},
	{"Lead Gen Form", "conversion", "interactive", "Web", "Berita Network", 7_000_000},
}

var seedPersonas = []seedPersona{
	{"Entertainment", 5_200_000, stateSplit(5_200_000), []string{"movies", "music", "streaming"}},
	{"Movie Buffs", 2_400_000, stateSplit(2_400_000), []string{"movies", "cinema"}},
	{"K-Drama Fans", 1_900_000, stateSplit(1_900_000), []string{"drama", "streaming"}},
	{"Sports Enthusiasts", 3_100_000, stateSplit(3_100_000), []string{"sports", "football"}},
	{"Football Fans", 2_600_000, stateSplit(2_600_000), []string{"football"}},
	{"Foodies", 2_800_000, stateSplit(2_800_000), []string{"food", "dining", "recipes"}},
	{"Travel & Experience Seekers", 2_200_000, stateSplit(2_200_000), []string{"travel", "holidays"}},
	{"Fashion Icons", 1_700_000, stateSplit(1_700_000), []string{"fashion", "shopping"}},
	{"Beauty Enthusiasts", 1_600_000, stateSplit(1_600_000), []string{"beauty", "skincare", "makeup"}},
	{"Health & Wellness Shoppers", 1_500_000, stateSplit(1_500_000), []string{"health", "fitness", "wellness"}},
	{"Tech Early Adopters", 1_400_000, stateSplit(1_400_000), []string{"gadgets", "technology"}},
	{"Gamers", 2_000_000, stateSplit(2_000_000), []string{"gaming", "esports"}},
	{"Online Shoppers", 3_400_000, stateSplit(3_400_000), []string{"shopping", "deals", "e-commerce"}},
	{"Car Enthusiasts", 1_300_000, stateSplit(1_300_000), []string{"cars", "motoring"}},
	{"New Car Intenders", 900_000, stateSplit(900_000), []string{"cars", "test drive"}},
	{"Corporate Visionaries", 800_000, stateSplit(800_000), []string{"business", "leadership"}},
	{"SME Owners", 1_100_000, stateSplit(1_100_000), []string{"business", "finance"}},
	{"Young Working Adult", 2_900_000, stateSplit(2_900_000), []string{"career", "lifestyle", "finance"}},
	{"Investors", 1_000_000, stateSplit(1_000_000), []string{"investing", "stocks", "finance"}},
	{"Luxury Seekers", 700_000, stateSplit(700_000), []string{"luxury", "premium"}},
	{"Emerging Affluents", 1_200_000, stateSplit(1_200_000), []string{"premium", "travel", "finance"}},
	{"Family Dynamic", 2_500_000, stateSplit(2_500_000), []string{"family", "groceries"}},
	{"Muslim Households", 3_000_000, stateSplit(3_000_000), []string{"family", "halal"}},
	{"Parents of Young Kids", 1_800_000, stateSplit(1_800_000), []string{"parenting", "education"}},
	{"Youth Mom", 1_100_000, stateSplit(1_100_000), []string{"parenting", "beauty"}},
	{"Newlyweds", 600_000, stateSplit(600_000), []string{"wedding", "home"}},
	{"Students", 1_900_000, stateSplit(1_900_000), []string{"education", "gaming", "music"}},
	{"Property Hunters", 850_000, stateSplit(850_000), []string{"property", "mortgage"}},
	{"Home Improvers", 950_000, stateSplit(950_000), []string{"home", "renovation"}},
}

var seedSites = []seedSite{
	{"Astro GO", "OTT", 6_500_000, "Entertainment"},
	{"Sooka", "OTT", 3_200_000, "Entertainment"},
	{"Tonton", "OTT", 4_100_000, "Entertainment"},
	{"Astro Awani", "Web", 5_800_000, "News"},
	{"Berita Harian", "Web", 4_900_000, "News"},
	{"Sinar Harian", "Web", 4_200_000, "News"},
	{"Utusan Malaysia", "Web", 2_800_000, "News"},
	{"Sin Chew Daily", "Web", 3_600_000, "News"},
	{"China Press", "Web", 2_400_000, "News"},
	{"Oriental Daily", "Web", 1_900_000, "News"},
	{"Tamil Nesan", "Web", 800_000, "News"},
	{"Makkal Osai", "Web", 600_000, "News"},
	{"Borneo Post", "Web", 1_200_000, "News"},
	{"Gempak", "Social", 3_900_000, "Entertainment"},
	{"Syok", "Web", 2_100_000, "Entertainment"},
	{"Carlist", "Web", 1_500_000, "Automotive"},
	{"PropertyGuru Malaysia", "Web", 1_700_000, "Property"},
	{"Lowyat.NET", "Web", 2_600_000, "Technology"},
	{"SAYS", "Social", 3_300_000, "Lifestyle"},
	{"Malaysiakini", "Web", 4_600_000, "News"},
}

// stateSplit distributes national reach over states roughly in proportion
// to population, keeping the figures self-consistent for geo planning.
func stateSplit(total int64) map[string]int64 {
	shares := map[string]int64{
		"Selangor":        22,
		"Kuala Lumpur":    12,
		"Johor":           11,
		"Sabah":           9,
		"Sarawak":         8,
		"Perak":           7,
		"Kedah":           6,
		"Penang":          6,
		"Kelantan":        5,
		"Pahang":          4,
		"Terengganu":      3,
		"Negeri Sembilan": 3,
		"Melaka":          2,
		"Perlis":          1,
		"Putrajaya":       1,
	}
	out := make(map[string]int64, len(shares))
	for state, pct := range shares {
		out[state] = total * pct / 100
	}
	return out
}

// Seed inserts the Malaysian reference datasets the planner works from.
// It is idempotent; existing rows are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, r := range seedRates {
		_, err := pool.Exec(ctx, `INSERT INTO rate_cards
    (platform, pillar, platform_type, format, devices, cpm_direct, cpm_pg, cpm_pd)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`,
			r.platform, r.pillar, r.platformType, r.format, r.devices, r.direct, r.pg, r.pd)
		if err != nil {
			return fmt.Errorf("seed rate card %s/%s: %w", r.platform, r.pillar, err)
		}
	}

	for _, f := range seedFormats {
		_, err := pool.Exec(ctx, `INSERT INTO ad_formats
    (name, goal, medium, category, platform, monthly_availability)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			f.name, f.goal, f.medium, f.category, f.platform, f.availability)
		if err != nil {
			return fmt.Errorf("seed ad format %s: %w", f.name, err)
		}
	}

	for _, p := range seedPersonas {
		reach, err := json.Marshal(p.reachByState)
		if err != nil {
			return fmt.Errorf("seed persona %s: %w", p.name, err)
		}
		_, err = pool.Exec(ctx, `INSERT INTO audience_personas
    (name, total_reach, reach_by_state, interests)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
			p.name, p.totalReach, reach, p.interests)
		if err != nil {
			return fmt.Errorf("seed persona %s: %w", p.name, err)
		}
	}

	for _, s := range seedSites {
		_, err := pool.Exec(ctx, `INSERT INTO publisher_sites
    (name, category, monthly_traffic, industry)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
			s.name, s.category, s.traffic, s.industry)
		if err != nil {
			return fmt.Errorf("seed site %s: %w", s.name, err)
		}
	}

	return nil
}
