package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"planwise/internal/core/domain"
	"planwise/internal/core/port"
	"planwise/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockPlannerUseCase) {
	svc := mocks.NewMockPlannerUseCase(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return h, svc
}

func TestHandleStartConversation(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().StartConversation(mock.Anything).Return("conv-1", nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp startConversationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "conv-1", resp.ConversationID)
}

func TestHandleMessage_Reply(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().HandleMessage(mock.Anything, "conv-1", "hello").Return(&port.TurnResult{
		ConversationID: "conv-1",
		Reply:          "Tell me more.",
		Brief:          domain.CampaignBrief{Budget: 150_000},
	}, nil).Once()

	body := bytes.NewBufferString(`{"message":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/conv-1/messages", body)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp turnResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Tell me more.", resp.Reply)
	assert.Equal(t, int64(150_000), resp.Brief.Budget)
	assert.Nil(t, resp.Plan)
}

func TestHandleMessage_WithPlan(t *testing.T) {
	h, svc := newTestHandler(t)
	plan := &domain.MediaPlan{
		ID:   "plan-1",
		Tier: domain.TierMid,
		LineItems: []domain.LineItem{
			{Platform: "Tonton", Pillar: "Video", BuyType: domain.BuyPD, CPM: 24, Budget: 90_000, Impressions: 3_750_000},
		},
		Summary: domain.PlanSummary{TotalBudget: 150_000},
	}
	svc.EXPECT().HandleMessage(mock.Anything, "conv-1", "4 weeks").Return(&port.TurnResult{
		ConversationID: "conv-1",
		Reply:          "Here's your plan",
		Plan:           plan,
	}, nil).Once()

	body := bytes.NewBufferString(`{"message":"4 weeks"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/conv-1/messages", body)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp turnResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "plan-1", resp.Plan.ID)
	require.Len(t, resp.Plan.LineItems, 1)
	assert.Equal(t, int64(90_000), resp.Plan.LineItems[0].Budget)
}

func TestHandleMessage_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"empty message", `{"message":"   "}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/conv-1/messages", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleMessage_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown conversation", port.ErrConversationNotFound, http.StatusNotFound},
		{"superseded turn", port.ErrTurnSuperseded, http.StatusConflict},
		{"datasets not ready", port.ErrNotReady, http.StatusServiceUnavailable},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.EXPECT().HandleMessage(mock.Anything, "conv-1", "x").Return(nil, tt.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/conv-1/messages", bytes.NewBufferString(`{"message":"x"}`))
			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusServiceUnavailable {
				assert.Equal(t, "5", rec.Header().Get("Retry-After"))
			}
		})
	}
}

func TestHandleGetBrief(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().GetBrief(mock.Anything, "conv-1").Return(&domain.CampaignBrief{
		Industry: "F&B",
		Budget:   80_000,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations/conv-1/brief", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp briefResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "F&B", resp.Industry)
}

func TestHandleGetPlan_NotFound(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().GetPlan(mock.Anything, "missing").Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/missing", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetPlan_Found(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().GetPlan(mock.Anything, "plan-1").Return(&domain.MediaPlan{
		ID:       "plan-1",
		Tier:     domain.TierHigh,
		Strategy: domain.TierStrategy{Name: "Premium Diversification"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/plan-1", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp planResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Premium Diversification", resp.Strategy)
}
