package handler

import (
	"net/http"

	"github.com/osse101/SkillForge_Go/internal/domain"
	"github.com/osse101/SkillForge_Go/internal/logger"
	"github.com/osse101/SkillForge_Go/internal/mining"
	"github.com/osse101/SkillForge_Go/internal/ore"
)

// BlockBrokenRequest is the block break notification sent by the host game
type BlockBrokenRequest struct {
	PlayerID string          `json:"player_id" validate:"required,playerid"`
	BlockID  string          `json:"block_id" validate:"required,max=200"`
	Position domain.Position `json:"position"`
}

// CatalogResponse lists the ore table and bonus drop settings
type CatalogResponse struct {
	Skill   string            `json:"skill"`
	Entries []ore.Entry       `json:"entries"`
	Drops   mining.DropConfig `json:"drops"`
}

// MiningHandler serves the mining skill endpoints
type MiningHandler struct {
	svc mining.Service
}

// NewMiningHandler creates a new mining handler
func NewMiningHandler(svc mining.Service) *MiningHandler {
	return &MiningHandler{svc: svc}
}

// HandleBreak applies a block break
// @Summary Report a broken block
// @Description Grants mining XP for ore blocks and may award a bonus drop. Non-ore blocks return is_ore=false.
// @Tags mining
// @Accept json
// @Produce json
// @Param request body BlockBrokenRequest true "Block break"
// @Success 200 {object} domain.BreakOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/mining/break [post]
func (h *MiningHandler) HandleBreak(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BlockBrokenRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Block break"); err != nil {
		return
	}

	outcome, err := h.svc.HandleBlockBroken(r.Context(), domain.BlockBrokenEvent{
		PlayerID: req.PlayerID,
		BlockID:  req.BlockID,
		Position: req.Position,
	})
	if err != nil {
		log.Error("Block break failed", "error", err, "player_id", req.PlayerID, "block_id", req.BlockID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

// HandleGetPlayer returns a player's skill status
// @Summary Get player skill status
// @Tags mining
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} domain.SkillStatus
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/mining/players/{playerID} [get]
func (h *MiningHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPlayerIDParam(r, w)
	if !ok {
		return
	}

	status, err := h.svc.GetStatus(r.Context(), playerID)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Get status failed", "error", err, "player_id", playerID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// HandleLoadPlayer loads a player, creating empty progress when new
// @Summary Load a player
// @Description Called when a player joins. Creates progress at 0 XP for new players and announces the level.
// @Tags mining
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} domain.SkillStatus
// @Router /api/v1/mining/players/{playerID}/load [post]
func (h *MiningHandler) HandleLoadPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPlayerIDParam(r, w)
	if !ok {
		return
	}

	status, err := h.svc.LoadPlayer(r.Context(), playerID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Load player failed", "error", err, "player_id", playerID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// HandleUnloadPlayer evicts a player from the cache
// @Summary Unload a player
// @Tags mining
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/mining/players/{playerID}/unload [post]
func (h *MiningHandler) HandleUnloadPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPlayerIDParam(r, w)
	if !ok {
		return
	}

	if err := h.svc.UnloadPlayer(r.Context(), playerID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerUnloaded})
}

// HandleRemovePlayer deletes a player's stored progress
// @Summary Remove a player
// @Tags mining
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/mining/players/{playerID} [delete]
func (h *MiningHandler) HandleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPlayerIDParam(r, w)
	if !ok {
		return
	}

	if err := h.svc.RemovePlayer(r.Context(), playerID); err != nil {
		logger.FromContext(r.Context()).Error("Remove player failed", "error", err, "player_id", playerID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerRemoved})
}

// HandleLeaderboard returns the top players by XP
// @Summary Mining leaderboard
// @Tags mining
// @Produce json
// @Param limit query int false "Number of entries (default 10, max 100)"
// @Success 200 {array} domain.LeaderboardEntry
// @Router /api/v1/mining/leaderboard [get]
func (h *MiningHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(r, w, QueryParamLimit, mining.DefaultLeaderboardLimit)
	if !ok {
		return
	}

	entries, err := h.svc.Leaderboard(r.Context(), limit)
	if err != nil {
		logger.FromContext(r.Context()).Error("Leaderboard failed", "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// HandleCatalog returns the ore table
// @Summary Mining ore catalog
// @Tags mining
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/mining/catalog [get]
func (h *MiningHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CatalogResponse{
		Skill:   h.svc.Skill(),
		Entries: h.svc.Catalog(),
		Drops:   h.svc.Drops(),
	})
}

// HandleCurve returns the level curve
// @Summary Level curve table
// @Tags mining
// @Produce json
// @Param levels query int false "Number of levels (default 20, max 500)"
// @Success 200 {array} domain.CurveRow
// @Router /api/v1/mining/curve [get]
func (h *MiningHandler) HandleCurve(w http.ResponseWriter, r *http.Request) {
	levels, ok := GetOptionalIntQueryParam(r, w, QueryParamLevels, mining.DefaultCurveRows)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.svc.CurveTable(levels))
}

// HandleCacheStats returns progress cache statistics
// @Summary Progress cache stats
// @Tags admin
// @Produce json
// @Success 200 {object} mining.CacheStats
// @Router /api/v1/admin/mining/cache/stats [get]
func (h *MiningHandler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.CacheStats())
}
