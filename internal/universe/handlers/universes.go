package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/errors"
	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/response"
	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/universe"
)

type UniverseHandler struct {
	service *universe.Service
	logger  *slog.Logger
}

func NewUniverseHandler(service *universe.Service, logger *slog.Logger) *UniverseHandler {
	return &UniverseHandler{
		service: service,
		logger:  logger,
	}
}

func (h *UniverseHandler) universeID(r *http.Request) (int, error) {
	idStr := r.PathValue("id")
	if idStr == "" {
		return 0, errors.Validation("universe ID is required")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.Validationf("invalid universe ID %q", idStr)
	}
	return id, nil
}

// CreateUniverse handles POST /api/universes - Admin only
func (h *UniverseHandler) CreateUniverse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "create_universe")
	logger.Info("Creating new universe")

	var req universe.GenerateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
			return
		}
	}

	result, err := h.service.CreateUniverse(r.Context(), req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, result)
}

// GetUniverses handles GET /api/universes
func (h *UniverseHandler) GetUniverses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "get_universes")
	logger.Debug("Getting all universes")

	summaries, err := h.service.ListUniverses()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, summaries)
}

// GetUniverse handles GET /api/universes/{id}
func (h *UniverseHandler) GetUniverse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "get_universe")

	id, err := h.universeID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	logger = logger.With("universe_id", id)
	logger.Debug("Getting universe by ID")

	record, err := h.service.GetUniverse(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, record)
}

// ReplaceSnapshot handles PUT /api/universes/{id}/snapshot - Admin only
func (h *UniverseHandler) ReplaceSnapshot(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "replace_snapshot")

	id, err := h.universeID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	logger = logger.With("universe_id", id)
	logger.Info("Replacing universe snapshot")

	var snapshot universe.UniverseSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid snapshot body", err))
		return
	}

	result, err := h.service.ReplaceSnapshot(r.Context(), id, &snapshot)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, result)
}

// DeleteUniverse handles DELETE /api/universes/{id} - Admin only
func (h *UniverseHandler) DeleteUniverse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "delete_universe")

	id, err := h.universeID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	logger = logger.With("universe_id", id)
	logger.Info("Deleting universe")

	if err := h.service.DeleteUniverse(r.Context(), id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
