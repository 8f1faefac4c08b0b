package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"planwise/internal/core/domain"
)

type planResponse struct {
	ID        string             `json:"id"`
	Tier      string             `json:"tier"`
	Strategy  string             `json:"strategy"`
	LineItems []lineItemResponse `json:"line_items"`
	Formats   []scoredResponse   `json:"formats"`
	Audiences []audienceResponse `json:"audiences"`
	Sites     []scoredResponse   `json:"sites"`
	Warnings  []warningResponse  `json:"warnings,omitempty"`
	Summary   summaryResponse    `json:"summary"`
	CreatedAt time.Time          `json:"created_at"`
}

type lineItemResponse struct {
	Platform    string  `json:"platform"`
	Pillar      string  `json:"pillar"`
	Format      string  `json:"format"`
	BuyType     string  `json:"buy_type"`
	CPM         float64 `json:"cpm"`
	Budget      int64   `json:"budget"`
	Impressions int64   `json:"impressions"`
}

type scoredResponse struct {
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason,omitempty"`
}

type audienceResponse struct {
	Name       string `json:"name"`
	Reach      int64  `json:"reach"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason,omitempty"`
}

type warningResponse struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type summaryResponse struct {
	TotalBudget       int64   `json:"total_budget"`
	TotalImpressions  int64   `json:"total_impressions"`
	UniqueReach       int64   `json:"unique_reach"`
	SimpleReachSum    int64   `json:"simple_reach_sum"`
	AvgCPM            float64 `json:"avg_cpm"`
	Geography         string  `json:"geography"`
	Devices           string  `json:"devices"`
	DurationWeeks     int     `json:"duration_weeks"`
	WeeklyBudget      int64   `json:"weekly_budget"`
	WeeklyImpressions int64   `json:"weekly_impressions"`
}

func toPlanResponse(p *domain.MediaPlan) planResponse {
	resp := planResponse{
		ID:        p.ID,
		Tier:      string(p.Tier),
		Strategy:  p.Strategy.Name,
		CreatedAt: p.CreatedAt,
		Summary: summaryResponse{
			TotalBudget:       p.Summary.TotalBudget,
			TotalImpressions:  p.Summary.TotalImpressions,
			UniqueReach:       p.Summary.UniqueReach,
			SimpleReachSum:    p.Summary.SimpleReachSum,
			AvgCPM:            p.Summary.AvgCPM,
			Geography:         p.Summary.Geography,
			Devices:           p.Summary.Devices,
			DurationWeeks:     p.Summary.DurationWeeks,
			WeeklyBudget:      p.Summary.WeeklyBudget,
			WeeklyImpressions: p.Summary.WeeklyImpressions,
		},
	}
	for _, l := range p.LineItems {
		resp.LineItems = append(resp.LineItems, lineItemResponse{
			Platform:    l.Platform,
			Pillar:      l.Pillar,
			Format:      l.Format,
			BuyType:     string(l.BuyType),
			CPM:         l.CPM,
			Budget:      l.Budget,
			Impressions: l.Impressions,
		})
	}
	for _, f := range p.Formats {
		resp.Formats = append(resp.Formats, scoredResponse{Name: f.Name, Confidence: f.Confidence, Reason: f.Reason})
	}
	for _, a := range p.Audiences {
		resp.Audiences = append(resp.Audiences, audienceResponse{
			Name:       a.Name,
			Reach:      a.GeoReachScore,
			Confidence: a.Confidence,
			Reason:     a.Reason,
		})
	}
	for _, s := range p.Sites {
		resp.Sites = append(resp.Sites, scoredResponse{Name: s.Name, Confidence: s.Confidence, Reason: s.Reason})
	}
	for _, warn := range p.Warnings {
		resp.Warnings = append(resp.Warnings, warningResponse{Severity: string(warn.Severity), Message: warn.Message})
	}
	return resp
}

func (h *Handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	if plan == nil {
		h.writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	h.writeJSON(w, http.StatusOK, toPlanResponse(plan))
}
