package handlers

import (
	"net/http"

	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InviteHandler handles HTTP requests for group invites
type InviteHandler struct {
	inviteService service.InviteServiceInterface
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(inviteService service.InviteServiceInterface) *InviteHandler {
	return &InviteHandler{
		inviteService: inviteService,
	}
}

// CreateInvite handles POST /invites
// @Summary Invite someone to a group
// @Description Admin only. The optional team must belong to the group.
// @Tags invites
// @Accept json
// @Produce json
// @Param invite body service.CreateInviteRequest true "Invite data"
// @Success 201 {object} service.InviteResponse "Invite created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Only admins can invite"
// @Security BearerAuth
// @Router /invites [post]
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.CreateInviteRequest
	if !bindJSON(c, &req) {
		return
	}

	invite, err := h.inviteService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invite)
}

// GetInvite handles GET /invites/:token
// @Summary Look up an invite
// @Description Public. Used by the sign-up screen to show the group being joined.
// @Tags invites
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} service.InviteResponse "Invite"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Router /invites/{token} [get]
func (h *InviteHandler) GetInvite(c *gin.Context) {
	invite, err := h.inviteService.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invite)
}

// AcceptInvite handles POST /invites/accept
// @Summary Accept an invite
// @Description Join the group of the invite as a player or an admin
// @Tags invites
// @Accept json
// @Produce json
// @Param request body service.AcceptInviteRequest true "Invite token"
// @Success 200 {object} service.InviteResponse "Invite accepted"
// @Failure 400 {object} ErrorResponse "Invite is expired, used or the group is full"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Security BearerAuth
// @Router /invites/accept [post]
func (h *InviteHandler) AcceptInvite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.AcceptInviteRequest
	if !bindJSON(c, &req) {
		return
	}

	invite, err := h.inviteService.Accept(c.Request.Context(), user, req.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invite)
}

// CancelInvite handles DELETE /invites/:id
// @Summary Cancel a pending invite
// @Tags invites
// @Produce json
// @Param id path string true "Invite ID (UUID)"
// @Success 200 {object} service.InviteResponse "Invite canceled"
// @Failure 400 {object} ErrorResponse "Invite is no longer pending"
// @Failure 403 {object} ErrorResponse "Only admins can cancel invites"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Security BearerAuth
// @Router /invites/{id} [delete]
func (h *InviteHandler) CancelInvite(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	inviteID, ok := paramUUID(c, "id", "invite")
	if !ok {
		return
	}

	invite, err := h.inviteService.Cancel(c.Request.Context(), userID, inviteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invite)
}

// ListPendingInvites handles GET /groups/:id/invites
// @Summary List pending invites of a group
// @Tags invites
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {array} service.InviteResponse "Pending invites"
// @Failure 403 {object} ErrorResponse "Only admins can list invites"
// @Security BearerAuth
// @Router /groups/{id}/invites [get]
func (h *InviteHandler) ListPendingInvites(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}

	invites, err := h.inviteService.ListPending(c.Request.Context(), userID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invites)
}
