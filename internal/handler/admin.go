package handler

import (
	"net/http"

	"github.com/osse101/SkillForge_Go/internal/logger"
	"github.com/osse101/SkillForge_Go/internal/mining"
)

// AddLevelsRequest moves a player up (or down when negative) by whole levels
type AddLevelsRequest struct {
	PlayerID string `json:"player_id" validate:"required,playerid"`
	Levels   int    `json:"levels" validate:"ne=0,min=-1000,max=1000"`
}

// SetXPRequest overwrites a player's XP. The upper bound is mining.MaxAdminXP.
type SetXPRequest struct {
	PlayerID string `json:"player_id" validate:"required,playerid"`
	XP       int64  `json:"xp" validate:"min=0,max=399950001278"`
}

// PlayerRequest names a player for a parameterless admin operation
type PlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required,playerid"`
}

// AdminHandler serves skill administration endpoints
type AdminHandler struct {
	svc mining.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(svc mining.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// HandleAddLevels adds levels while keeping progress inside the current level
// @Summary Add mining levels
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AddLevelsRequest true "Levels to add"
// @Success 200 {object} domain.SkillStatus
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/mining/add-levels [post]
func (h *AdminHandler) HandleAddLevels(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req AddLevelsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add levels"); err != nil {
		return
	}

	status, err := h.svc.AddLevels(r.Context(), req.PlayerID, req.Levels)
	if err != nil {
		log.Error("Add levels failed", "error", err, "player_id", req.PlayerID, "levels", req.Levels)
		respondServiceError(w, err)
		return
	}

	log.Info("Admin added levels", "player_id", req.PlayerID, "levels", req.Levels, "new_level", status.Level)
	respondJSON(w, http.StatusOK, status)
}

// HandleSetXP overwrites XP
// @Summary Set mining XP
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SetXPRequest true "New XP"
// @Success 200 {object} domain.SkillStatus
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/mining/set-xp [post]
func (h *AdminHandler) HandleSetXP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SetXPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set XP"); err != nil {
		return
	}

	status, err := h.svc.SetXP(r.Context(), req.PlayerID, req.XP)
	if err != nil {
		log.Error("Set XP failed", "error", err, "player_id", req.PlayerID)
		respondServiceError(w, err)
		return
	}

	log.Info("Admin set XP", "player_id", req.PlayerID, "xp", req.XP)
	respondJSON(w, http.StatusOK, status)
}

// HandleReset returns a player to level 1
// @Summary Reset mining progress
// @Tags admin
// @Accept json
// @Produce json
// @Param request body PlayerRequest true "Player"
// @Success 200 {object} domain.SkillStatus
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/mining/reset [post]
func (h *AdminHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reset"); err != nil {
		return
	}

	status, err := h.svc.Reset(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("Reset failed", "error", err, "player_id", req.PlayerID)
		respondServiceError(w, err)
		return
	}

	log.Info("Admin reset player", "player_id", req.PlayerID)
	respondJSON(w, http.StatusOK, status)
}
