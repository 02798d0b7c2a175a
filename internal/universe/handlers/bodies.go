package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/errors"
	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/response"
	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/universe"
)

type reparentBodyRequest struct {
	NewParentID string `json:"new_parent_id"`
}

type reparentGroupRequest struct {
	NewParentID *string `json:"new_parent_id"`
}

// PatchBody handles PATCH /api/universes/{id}/bodies/{body_id} - Admin only
func (h *UniverseHandler) PatchBody(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "patch_body")

	id, err := h.universeID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	bodyID := r.PathValue("body_id")
	logger = logger.With("universe_id", id, "body_id", bodyID)

	var patch universe.BodyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid patch body", err))
		return
	}

	record, err := h.service.PatchBody(r.Context(), id, bodyID, &patch)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, record)
}

// ReparentBody handles POST /api/universes/{id}/bodies/{body_id}/reparent - Admin only
func (h *UniverseHandler) ReparentBody(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "reparent_body")

	id, err := h.universeID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	bodyID := r.PathValue("body_id")
	logger = logger.With("universe_id", id, "body_id", bodyID)

	var req reparentBodyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}
	if req.NewParentID == "" {
		response.Error(w, r, logger, errors.Validation("new_parent_id is required"))
		return
	}

	record, err := h.service.ReparentBody(r.Context(), id, bodyID, req.NewParentID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, record)
}

// PatchGroup handles PATCH /api/universes/{id}/groups/{group_id} - Admin only
func (h *UniverseHandler) PatchGroup(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "patch_group")

	id, err := h.universeID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	groupID := r.PathValue("group_id")
	logger = logger.With("universe_id", id, "group_id", groupID)

	var patch universe.GroupPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid patch body", err))
		return
	}

	record, err := h.service.PatchGroup(r.Context(), id, groupID, &patch)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, record)
}

// ReparentGroup handles POST /api/universes/{id}/groups/{group_id}/reparent - Admin only
func (h *UniverseHandler) ReparentGroup(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "reparent_group")

	id, err := h.universeID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	groupID := r.PathValue("group_id")
	logger = logger.With("universe_id", id, "group_id", groupID)

	var req reparentGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	record, err := h.service.ReparentGroup(r.Context(), id, groupID, req.NewParentID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, record)
}
