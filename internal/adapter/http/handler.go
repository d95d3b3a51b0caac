package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"promoted-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP that decodes requests, calls the usecases and maps their errors onto
// status codes. Routes are registered on a chi.Router.
type Handler struct {
	ads       port.AdUseCase
	campaigns port.CampaignUseCase
	products  port.ProductUseCase
	logger    *slog.Logger
	router    chi.Router

	// now stamps error responses.
	now func() time.Time
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	ads port.AdUseCase,
	campaigns port.CampaignUseCase,
	products port.ProductUseCase,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		ads:       ads,
		campaigns: campaigns,
		products:  products,
		logger:    logger,
		now:       time.Now,
	}
	r := chi.NewRouter()
	r.Use(requestID, h.accessLog, middleware.Recoverer)
	r.NotFound(h.handleNotFound)
	r.MethodNotAllowed(h.handleMethodNotAllowed)

	r.Get("/health", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ad/{category}", h.handleServeAd)

		r.Route("/campaign", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
		})

		r.Route("/product", func(r chi.Router) {
			r.Post("/", h.handleCreateProduct)
			r.Get("/{id}", h.handleGetProduct)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "UP"})
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w, r, http.StatusNotFound, "no handler for "+r.Method+" "+r.URL.Path)
}

func (h *Handler) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w, r, http.StatusMethodNotAllowed, r.Method+" is not supported for "+r.URL.Path)
}
