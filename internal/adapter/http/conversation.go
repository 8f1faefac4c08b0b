package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"planwise/internal/core/domain"
)

type startConversationResponse struct {
	ConversationID string `json:"conversation_id"`
}

type messageRequest struct {
	Message string `json:"message"`
}

type turnResponse struct {
	ConversationID string        `json:"conversation_id"`
	Reply          string        `json:"reply"`
	Brief          briefResponse `json:"brief"`
	Plan           *planResponse `json:"plan,omitempty"`
}

type briefResponse struct {
	ProductBrand      string   `json:"product_brand,omitempty"`
	Objective         string   `json:"objective,omitempty"`
	Industry          string   `json:"industry,omitempty"`
	Budget            int64    `json:"budget,omitempty"`
	Geography         []string `json:"geography,omitempty"`
	DurationWeeks     int      `json:"duration_weeks,omitempty"`
	Devices           []string `json:"devices,omitempty"`
	BuyingType        string   `json:"buying_type,omitempty"`
	Priority          string   `json:"priority,omitempty"`
	ChannelPreference string   `json:"channel_preference,omitempty"`
	CreativeAsset     string   `json:"creative_asset,omitempty"`
	Seasonal          string   `json:"seasonal,omitempty"`
	Cultural          string   `json:"cultural,omitempty"`
	Blacklist         []string `json:"blacklist,omitempty"`
	Whitelist         []string `json:"whitelist,omitempty"`
	ExtractionLog     []string `json:"extraction_log,omitempty"`
}

func toBriefResponse(b domain.CampaignBrief) briefResponse {
	return briefResponse{
		ProductBrand:      b.ProductBrand,
		Objective:         string(b.Objective),
		Industry:          b.Industry,
		Budget:            b.Budget,
		Geography:         b.Geography,
		DurationWeeks:     b.DurationWeeks,
		Devices:           b.Devices,
		BuyingType:        string(b.BuyingType),
		Priority:          string(b.Priority),
		ChannelPreference: string(b.ChannelPreference),
		CreativeAsset:     string(b.CreativeAsset),
		Seasonal:          string(b.Seasonal),
		Cultural:          string(b.Cultural),
		Blacklist:         b.Blacklist,
		Whitelist:         b.Whitelist,
		ExtractionLog:     b.ExtractionLog,
	}
}

func (h *Handler) handleStartConversation(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.StartConversation(r.Context())
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, startConversationResponse{ConversationID: id})
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.writeError(w, http.StatusBadRequest, "message must not be empty")
		return
	}

	res, err := h.svc.HandleMessage(r.Context(), chi.URLParam(r, "id"), req.Message)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}

	resp := turnResponse{
		ConversationID: res.ConversationID,
		Reply:          res.Reply,
		Brief:          toBriefResponse(res.Brief),
	}
	if res.Plan != nil {
		p := toPlanResponse(res.Plan)
		resp.Plan = &p
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetBrief(w http.ResponseWriter, r *http.Request) {
	brief, err := h.svc.GetBrief(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBriefResponse(*brief))
}
