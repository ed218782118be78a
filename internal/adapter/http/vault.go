package httpadapter

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"lark/internal/core/domain"
)

type okResp struct {
	OK bool `json:"ok"`
}

// okOnly adapts a vault call without a result to one answering {ok:true}.
func okOnly[Req any](call func(ctx context.Context, userID uuid.UUID, req Req) error) func(context.Context, uuid.UUID, Req) (okResp, error) {
	return func(ctx context.Context, userID uuid.UUID, req Req) (okResp, error) {
		if err := call(ctx, userID, req); err != nil {
			return okResp{}, err
		}
		return okResp{OK: true}, nil
	}
}

// vaultFunction serves one vault function: the caller comes from the
// X-User-ID header, the body is the JSON request and failures are answered
// with the vault error code.
func vaultFunction[Req, Resp any](h *Handler, call func(context.Context, uuid.UUID, Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := caller(r)
		if err != nil {
			h.writeError(w, r, &domain.VaultError{Code: domain.VaultMissingBearer})
			return
		}
		var req Req
		if err = decodeJSON(r, &req); err != nil {
			h.writeError(w, r, &domain.VaultError{Code: domain.VaultBadRequest, Details: "invalid JSON", Err: err})
			return
		}
		resp, err := call(r.Context(), userID, req)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, resp)
	}
}
