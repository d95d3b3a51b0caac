package httpadapter

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"promoted-ads/internal/core/port"
)

type createCampaignBody struct {
	Name       string          `json:"name"`
	StartDate  time.Time       `json:"startDate"`
	Bid        decimal.Decimal `json:"bid"`
	ProductIDs []int64         `json:"productIds"`
}

// handleCreateCampaign creates a campaign and replies 201 with it.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body createCampaignBody
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}

	resp, err := h.campaigns.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Name:       body.Name,
		StartDate:  body.StartDate,
		Bid:        body.Bid,
		ProductIDs: body.ProductIDs,
	})
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaign")
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	resp, err := h.campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
