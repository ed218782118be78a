package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CallerHeader carries the authenticated user id.
const CallerHeader = "X-User-ID"

var (
	errMissingCaller = errors.New("missing caller identity")
	errBadRequest    = errors.New("bad request")
)

// caller returns the user id of the X-User-ID header. An absent or
// malformed header is treated as no identity.
func caller(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.Header.Get(CallerHeader))
	if raw == "" {
		return uuid.Nil, errMissingCaller
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errMissingCaller
	}
	return id, nil
}

// pathID parses the uuid bound to the named route parameter.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", errBadRequest, name)
	}
	return id, nil
}

// decodeJSON reads the request body into dst. Any syntax or type error is
// reported as errBadRequest; an oversized body keeps its
// *http.MaxBytesError.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return tooLarge
		}
		return fmt.Errorf("%w: invalid JSON", errBadRequest)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
