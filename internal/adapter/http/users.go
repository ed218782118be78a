package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"lark/internal/core/domain"
)

// handleSearchUsers looks users up by a fragment of their email given in
// the `email` query parameter. A blank query returns an empty list.
func (h *Handler) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users.SearchUsers(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	user, err := h.svc.Users.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// self resolves the {userID} path parameter and requires it to be the
// caller. It writes the error response and returns false otherwise.
func (h *Handler) self(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := pathID(r, "userID")
	if err != nil {
		h.writeError(w, r, err)
		return uuid.Nil, false
	}
	callerID, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return uuid.Nil, false
	}
	if callerID != id {
		h.writeJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
		return uuid.Nil, false
	}
	return id, true
}

// handleHome returns the home screen of the caller.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	id, ok := h.self(w, r)
	if !ok {
		return
	}
	home, err := h.svc.Home.Home(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, home)
}

// handleOwnCampaigns returns the campaigns owned by the user, served from
// the campaign cache while it is fresh.
func (h *Handler) handleOwnCampaigns(w http.ResponseWriter, r *http.Request) {
	id, ok := h.self(w, r)
	if !ok {
		return
	}
	campaigns, err := h.svc.Campaigns.OwnCampaigns(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleSubmitKYC accepts the identity images of the calling user. Users
// may only submit their own documents.
func (h *Handler) handleSubmitKYC(w http.ResponseWriter, r *http.Request) {
	id, ok := h.self(w, r)
	if !ok {
		return
	}
	var sub domain.KYCSubmission
	if err := decodeJSON(r, &sub); err != nil {
		h.writeError(w, r, err)
		return
	}
	err := h.svc.KYC.SubmitKYC(r.Context(), id, sub, func(p float64) {
		h.logger.Debug("kyc upload progress", slog.String("user_id", id.String()), slog.Float64("progress", p))
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
