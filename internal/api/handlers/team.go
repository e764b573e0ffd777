package handlers

import (
	"net/http"

	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Team created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Only admins can manage teams"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /groups/:id/teams
// @Summary List the teams of a group
// @Description Active teams with their current rosters
// @Tags teams
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {array} service.TeamResponse "Teams"
// @Failure 403 {object} ErrorResponse "Not a member of the group"
// @Security BearerAuth
// @Router /groups/{id}/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}

	teams, err := h.teamService.List(c.Request.Context(), userID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	teamID, ok := paramUUID(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.Get(c.Request.Context(), userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PATCH /teams/:id
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} service.TeamResponse "Team updated"
// @Failure 403 {object} ErrorResponse "Only admins can manage teams"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	teamID, ok := paramUUID(c, "id", "team")
	if !ok {
		return
	}
	var req service.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), userID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Deactivate a team
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Team deactivated"
// @Failure 403 {object} ErrorResponse "Only admins can manage teams"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	teamID, ok := paramUUID(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), userID, teamID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMember handles POST /teams/:id/members
// @Summary Add a member to a team
// @Description A member plays for one active team per group. The previous assignment is closed.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param member body service.AddTeamMemberRequest true "Lineup data"
// @Success 201 {object} service.TeamMemberResponse "Member added"
// @Failure 400 {object} ErrorResponse "Member belongs to another group"
// @Failure 409 {object} ErrorResponse "Member is already in the team"
// @Security BearerAuth
// @Router /teams/{id}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	teamID, ok := paramUUID(c, "id", "team")
	if !ok {
		return
	}
	var req service.AddTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.teamService.AddMember(c.Request.Context(), userID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateMember handles PATCH /teams/:id/members/:memberId
// @Summary Update lineup attributes
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param memberId path string true "Member ID (UUID)"
// @Param member body service.UpdateTeamMemberRequest true "Fields to change"
// @Success 200 {object} service.TeamMemberResponse "Lineup updated"
// @Failure 404 {object} ErrorResponse "Member is not in the team"
// @Security BearerAuth
// @Router /teams/{id}/members/{memberId} [patch]
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	teamID, ok := paramUUID(c, "id", "team")
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "memberId", "member")
	if !ok {
		return
	}
	var req service.UpdateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.teamService.UpdateMember(c.Request.Context(), userID, teamID, memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /teams/:id/members/:memberId
// @Summary Remove a member from a team
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Param memberId path string true "Member ID (UUID)"
// @Success 204 "Member removed"
// @Failure 404 {object} ErrorResponse "Member is not in the team"
// @Security BearerAuth
// @Router /teams/{id}/members/{memberId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	teamID, ok := paramUUID(c, "id", "team")
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "memberId", "member")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(c.Request.Context(), userID, teamID, memberID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
