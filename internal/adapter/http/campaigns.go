package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"lark/internal/core/domain"
)

// handleCreateCampaign runs the creation workflow for the calling user.
// The owner in the body may be omitted; when present it must be the
// caller. On success it returns HTTP 201 with the campaign record.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.CreateCampaignRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.OwnerUserID == uuid.Nil {
		req.OwnerUserID = callerID
	}
	if req.OwnerUserID != callerID {
		h.writeJSON(w, http.StatusForbidden, errorBody{Error: "forbidden", Details: "campaigns are created for the caller"})
		return
	}
	campaign, err := h.svc.Creator.CreateCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, campaign)
}

func (h *Handler) handleCampaignImages(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "campaignID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	images, err := h.svc.Campaigns.CampaignImages(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if images == nil {
		images = []domain.CampaignImage{}
	}
	h.writeJSON(w, http.StatusOK, images)
}

func (h *Handler) handleCampaignDonations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "campaignID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	donations, err := h.svc.Donations.CampaignDonations(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, donations)
}

type conflictsReq struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

type conflictsResp struct {
	Conflicts []domain.BeneficiaryConflict `json:"conflicts"`
}

// handleCheckConflicts reports which of the given users are already
// active beneficiaries of another campaign.
func (h *Handler) handleCheckConflicts(w http.ResponseWriter, r *http.Request) {
	var req conflictsReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	conflicts, err := h.svc.Conflicts.CheckConflicts(r.Context(), req.UserIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, conflictsResp{Conflicts: conflicts})
}

// handleInvalidateCache drops cached campaign data. The `kind` query
// parameter selects campaigns, images or all; all forces a reload of
// everything.
func (h *Handler) handleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	switch kind := r.URL.Query().Get("kind"); kind {
	case "all":
		h.svc.Campaigns.ForceReload()
	case string(domain.CacheCampaigns), string(domain.CacheImages):
		h.svc.Campaigns.Invalidate(domain.CacheKind(kind))
	default:
		h.writeError(w, r, fmt.Errorf("%w: unknown cache kind %q", errBadRequest, kind))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
