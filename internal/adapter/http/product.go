package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/core/port"
)

type createProductBody struct {
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	SerialNumber string          `json:"serialNumber"`
}

// handleCreateProduct creates a product and replies 201 with it. A serial
// number already in use yields 409.
func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var body createProductBody
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, "create product", err)
		return
	}

	// A missing category is reported by validation along with other fields.
	var category domain.Category
	if body.Category != "" {
		c, err := domain.ParseCategory(body.Category)
		if err != nil {
			h.writeError(w, r, "create product", err)
			return
		}
		category = c
	}

	resp, err := h.products.CreateProduct(r.Context(), port.CreateProductReq{
		Title:        body.Title,
		Price:        body.Price,
		Category:     category,
		SerialNumber: body.SerialNumber,
	})
	if err != nil {
		h.writeError(w, r, "create product", err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/v1/product/%d", resp.ID))
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, r, "get product", &domain.Error{
			Kind: domain.ErrInvalidInput,
			Msg:  "invalid product id",
		})
		return
	}

	resp, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get product", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
