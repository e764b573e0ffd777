package handlers

import (
	"net/http"

	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles HTTP requests for matches
type MatchHandler struct {
	matchService service.MatchServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService service.MatchServiceInterface) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// CreateMatch handles POST /matches
// @Summary Schedule a match
// @Description Schedule a match and open a pending RSVP for every active member
// @Tags matches
// @Accept json
// @Produce json
// @Param match body service.CreateMatchRequest true "Match data"
// @Success 201 {object} service.MatchResponse "Match scheduled"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not a member of the group"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.CreateMatchRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.matchService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

// ListMatches handles GET /groups/:id/matches
// @Summary List the matches of a group
// @Description Non-canceled matches in schedule order with their confirmed counts
// @Tags matches
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param upcoming query bool false "Only future matches" default(false)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MatchListResponse "Matches"
// @Failure 403 {object} ErrorResponse "Not a member of the group"
// @Security BearerAuth
// @Router /groups/{id}/matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	matches, err := h.matchService.List(c.Request.Context(), userID, groupID, boolQuery(c, "upcoming", false), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetMatch handles GET /matches/:id
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchResponse "Match"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	matchID, ok := paramUUID(c, "id", "match")
	if !ok {
		return
	}

	match, err := h.matchService.Get(c.Request.Context(), userID, matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// UpdateMatch handles PATCH /matches/:id
// @Summary Update a match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param match body service.UpdateMatchRequest true "Fields to change"
// @Success 200 {object} service.MatchResponse "Match updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [patch]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	matchID, ok := paramUUID(c, "id", "match")
	if !ok {
		return
	}
	var req service.UpdateMatchRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.matchService.Update(c.Request.Context(), userID, matchID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// CancelMatch handles DELETE /matches/:id
// @Summary Cancel a match
// @Tags matches
// @Param id path string true "Match ID (UUID)"
// @Success 204 "Match canceled"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [delete]
func (h *MatchHandler) CancelMatch(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	matchID, ok := paramUUID(c, "id", "match")
	if !ok {
		return
	}

	if err := h.matchService.Cancel(c.Request.Context(), userID, matchID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRoster handles GET /matches/:id/roster
// @Summary Match roster
// @Description Attendance split into confirmed, pending and declined. A maybe answer counts as pending.
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchRosterResponse "Roster"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Security BearerAuth
// @Router /matches/{id}/roster [get]
func (h *MatchHandler) GetRoster(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	matchID, ok := paramUUID(c, "id", "match")
	if !ok {
		return
	}

	roster, err := h.matchService.Roster(c.Request.Context(), userID, matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}
