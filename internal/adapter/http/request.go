package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"promoted-ads/internal/core/domain"
)

// handleServeAd returns the promoted product for the {category} path
// parameter, matched case-insensitively. An unknown category yields 400 and
// no servable product yields 404.
func (h *Handler) handleServeAd(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		h.writeError(w, r, "serve ad", err)
		return
	}

	resp, err := h.ads.ServeAd(r.Context(), category)
	if err != nil {
		h.writeError(w, r, "serve ad", err)
		return
	}
	h.logger.DebugContext(r.Context(), "serving ad",
		slog.String("category", category.String()),
		slog.Int64("product_id", resp.ID))
	h.writeJSON(w, http.StatusOK, resp)
}
