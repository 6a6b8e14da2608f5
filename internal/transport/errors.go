package transport

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
)

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
}

// statusOf maps an error kind to its HTTP status.
func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindInvalidPayload:
		return http.StatusBadRequest
	case apperr.KindInvalidProof, apperr.KindInvalidRoot:
		return http.StatusForbidden
	case apperr.KindUnknownAction, apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindAlreadyInFlight, apperr.KindAlreadyExecuted:
		return http.StatusConflict
	case apperr.KindContentRejected:
		return http.StatusUnprocessableEntity
	case apperr.KindRateLimited:
		return http.StatusTooManyRequests
	case apperr.KindPlatformUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := statusOf(kind)
	if window, ok := apperr.RetryAfter(err); ok && window > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(window.Seconds()))))
	}

	body := errorBody{Error: err.Error(), Kind: string(kind)}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		body.Error = "internal error"
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperr.Wrap(apperr.KindInvalidPayload, err, "request body too large")
		}
		return apperr.Wrap(apperr.KindInvalidPayload, err, "decode request body")
	}
	return nil
}
