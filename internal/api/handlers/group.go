package handlers

import (
	"net/http"

	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for group operations
type GroupHandler struct {
	groupService service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// CreateGroup handles POST /groups
// @Summary Create a group
// @Description Create a group. The caller becomes its owner admin.
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Group created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// ListGroups handles GET /groups
// @Summary List my groups
// @Description List the groups the caller belongs to or administers
// @Tags groups
// @Produce json
// @Param active_only query bool false "Only active groups" default(true)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.GroupListResponse "Groups"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	groups, err := h.groupService.List(c.Request.Context(), userID, boolQuery(c, "active_only", true), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetGroup handles GET /groups/:id
// @Summary Get a group
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupResponse "Group"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 403 {object} ErrorResponse "Not a member of the group"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}

	group, err := h.groupService.Get(c.Request.Context(), userID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// UpdateGroup handles PATCH /groups/:id
// @Summary Update a group
// @Description Update group settings. Changing the type recomputes the member limit.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param group body service.UpdateGroupRequest true "Fields to change"
// @Success 200 {object} service.GroupResponse "Group updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Only admins can update the group"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [patch]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}
	var req service.UpdateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.groupService.Update(c.Request.Context(), userID, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup handles DELETE /groups/:id
// @Summary Deactivate a group
// @Tags groups
// @Param id path string true "Group ID (UUID)"
// @Success 204 "Group deactivated"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 403 {object} ErrorResponse "Only admins can deactivate the group"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}

	if err := h.groupService.Deactivate(c.Request.Context(), userID, groupID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBalance handles GET /groups/:id/balance
// @Summary Group balance
// @Description Approved and outstanding totals of the group ledger
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.BalanceResponse "Balance"
// @Failure 403 {object} ErrorResponse "Not a member of the group"
// @Security BearerAuth
// @Router /groups/{id}/balance [get]
func (h *GroupHandler) GetBalance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}

	balance, err := h.groupService.Balance(c.Request.Context(), userID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// ListAdmins handles GET /groups/:id/admins
// @Summary List group admins
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {array} service.GroupAdminResponse "Admins"
// @Failure 403 {object} ErrorResponse "Not a member of the group"
// @Security BearerAuth
// @Router /groups/{id}/admins [get]
func (h *GroupHandler) ListAdmins(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}

	admins, err := h.groupService.ListAdmins(c.Request.Context(), userID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}
