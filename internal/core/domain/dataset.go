package domain

import "strings"

// RateCardEntry is one row of external rate data. CPM fields are RM per
// thousand impressions; zero means the buy type is not offered for the row.
type RateCardEntry struct {
	ID           int64
	Platform     string
	Pillar       string // Video, OTT, Display, Social, Native, Retargeting, Premium
	PlatformType string
	Format       string
	Devices      []string
	CPMDirect    float64
	CPMPG        float64
	CPMPD        float64
}

// ResolveCPM picks the effective CPM for a requested buy type, walking the
// fallback chain the rate desk quotes against: PG falls back to Direct, PD
// to PG then Direct, and Mixed takes the cheapest offered rate. The second
// return value is the buy type actually priced.
func (r RateCardEntry) ResolveCPM(want BuyingType) (float64, BuyingType, bool) {
	switch want {
	case BuyDirect:
		if r.CPMDirect > 0 {
			return r.CPMDirect, BuyDirect, true
		}
	case BuyPG:
		if r.CPMPG > 0 {
			return r.CPMPG, BuyPG, true
		}
		if r.CPMDirect > 0 {
			return r.CPMDirect, BuyDirect, true
		}
	case BuyPD:
		if r.CPMPD > 0 {
			return r.CPMPD, BuyPD, true
		}
		if r.CPMPG > 0 {
			return r.CPMPG, BuyPG, true
		}
		if r.CPMDirect > 0 {
			return r.CPMDirect, BuyDirect, true
		}
	default: // Mixed or unset: cheapest available
		best, bt := 0.0, BuyingType("")
		for _, c := range []struct {
			cpm float64
			bt  BuyingType
		}{{r.CPMPD, BuyPD}, {r.CPMPG, BuyPG}, {r.CPMDirect, BuyDirect}} {
			if c.cpm > 0 && (best == 0 || c.cpm < best) {
				best, bt = c.cpm, c.bt
			}
		}
		if best > 0 {
			return best, bt, true
		}
	}
	return 0, "", false
}

// SupportsAnyDevice reports whether the entry can serve at least one of the
// requested devices. An empty request matches everything.
func (r RateCardEntry) SupportsAnyDevice(devices []string) bool {
	if len(devices) == 0 || len(r.Devices) == 0 {
		return true
	}
	for _, want := range devices {
		for _, have := range r.Devices {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}

// AdFormat is one row of the ad-format reference dataset.
// MonthlyAvailability is the sellable impression volume per month; zero
// means the figure is unknown and the format is excluded from feasibility
// checks.
type AdFormat struct {
	ID                  int64
	Name                string
	Goal                string // objective family the format is sold against
	Medium              string // video, static, interactive
	Category            string // OTT, Web, Social
	Platform            string
	MonthlyAvailability int64
}

// AudiencePersona is one row of the audience reference dataset. Reach
// figures are individuals; ReachByState holds state-level splits keyed by
// state name.
type AudiencePersona struct {
	ID           int64
	Name         string
	TotalReach   int64
	ReachByState map[string]int64
	Interests    []string
}

// GeoReach sums the persona's reach over the given states. A nationwide
// geography returns total reach.
func (p AudiencePersona) GeoReach(geography []string) int64 {
	national := len(geography) == 0
	for _, g := range geography {
		if g == GeoNationwide {
			national = true
		}
	}
	if national {
		return p.TotalReach
	}
	var sum int64
	for _, state := range geography {
		sum += p.ReachByState[state]
	}
	return sum
}

// PublisherSite is one row of the publisher reference dataset.
type PublisherSite struct {
	ID             int64
	Name           string
	Category       string // OTT, Web, Social
	MonthlyTraffic int64
	Industry       string
}
