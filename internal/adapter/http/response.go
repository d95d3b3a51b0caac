package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"promoted-ads/internal/core/domain"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	ErrorCode    string    `json:"errorCode"`
	ErrorMessage string    `json:"errorMessage"`
	Timestamp    time.Time `json:"timestamp"`
}

// statusFor maps a usecase error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError replies with the status matching err. Internal errors are
// logged and their details are not returned.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), op+" error",
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.Any("error", err))
		msg = "internal error"
	} else {
		h.logger.DebugContext(r.Context(), op+" rejected",
			slog.Int("status", status),
			slog.String("reason", msg))
	}
	h.writeStatus(w, r, status, msg)
}

func (h *Handler) writeStatus(w http.ResponseWriter, _ *http.Request, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{
		ErrorCode:    http.StatusText(status),
		ErrorMessage: msg,
		Timestamp:    h.now().UTC(),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &domain.Error{Kind: domain.ErrInvalidInput, Msg: "invalid JSON: " + err.Error()}
	}
	return nil
}
