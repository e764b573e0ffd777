package handlers

import (
	"net/http"

	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for the scorers table
type StatsHandler struct {
	statsService service.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetLeaderboard handles GET /groups/:id/scorers
// @Summary Scorers table
// @Description Active members by goals, then assists, then name
// @Tags stats
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {array} service.ScorerResponse "Scorers"
// @Failure 403 {object} ErrorResponse "Not a member of the group"
// @Security BearerAuth
// @Router /groups/{id}/scorers [get]
func (h *StatsHandler) GetLeaderboard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}

	board, err := h.statsService.Leaderboard(c.Request.Context(), userID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// UpdateStats handles PATCH /groups/:id/scorers/:memberId
// @Summary Set goals and assists of a member
// @Tags stats
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param memberId path string true "Member ID (UUID)"
// @Param stats body service.UpdateStatsRequest true "Totals"
// @Success 200 {object} service.ScorerResponse "Totals updated"
// @Failure 400 {object} ErrorResponse "Invalid totals or member of another group"
// @Failure 403 {object} ErrorResponse "Only admins can change totals"
// @Security BearerAuth
// @Router /groups/{id}/scorers/{memberId} [patch]
func (h *StatsHandler) UpdateStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "memberId", "member")
	if !ok {
		return
	}
	var req service.UpdateStatsRequest
	if !bindJSON(c, &req) {
		return
	}

	stats, err := h.statsService.Update(c.Request.Context(), userID, groupID, memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
