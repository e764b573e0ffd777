package handlers

import (
	"net/http"

	"quemjoga-backend/internal/database/models"
	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for group members
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// CreateMember handles POST /members
// @Summary Add a member to a group
// @Description Admin only. Fails when the group is full or the admin limit is reached.
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Member created"
// @Failure 400 {object} ErrorResponse "Invalid request or limit reached"
// @Failure 403 {object} ErrorResponse "Only admins can add members"
// @Failure 409 {object} ErrorResponse "User already belongs to the group"
// @Security BearerAuth
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.CreateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// ListMembers handles GET /groups/:id/members
// @Summary List the members of a group
// @Tags members
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param position query string false "Position filter"
// @Param active_only query bool false "Only active members" default(true)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MemberListResponse "Members"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 403 {object} ErrorResponse "Not a member of the group"
// @Security BearerAuth
// @Router /groups/{id}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}

	filter := service.MemberListFilter{ActiveOnly: boolQuery(c, "active_only", true)}
	if raw := c.Query("position"); raw != "" {
		position := models.Position(raw)
		if !position.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid position"})
			return
		}
		filter.Position = &position
	}
	page, pageSize := pageParams(c)

	members, err := h.memberService.List(c.Request.Context(), userID, groupID, filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetMember handles GET /members/:id
// @Summary Get a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse "Member"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "id", "member")
	if !ok {
		return
	}

	member, err := h.memberService.Get(c.Request.Context(), userID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// UpdateMember handles PATCH /members/:id
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param member body service.UpdateMemberRequest true "Fields to change"
// @Success 200 {object} service.MemberResponse "Member updated"
// @Failure 400 {object} ErrorResponse "Invalid request or limit reached"
// @Failure 403 {object} ErrorResponse "Only admins can update members"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [patch]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "id", "member")
	if !ok {
		return
	}
	var req service.UpdateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), userID, memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteMember handles DELETE /members/:id
// @Summary Deactivate a member
// @Tags members
// @Param id path string true "Member ID (UUID)"
// @Success 204 "Member deactivated"
// @Failure 403 {object} ErrorResponse "Only admins can remove members"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "id", "member")
	if !ok {
		return
	}

	if err := h.memberService.Deactivate(c.Request.Context(), userID, memberID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetHistory handles GET /members/:id/history
// @Summary Member history
// @Description Attendance rate, payment totals and card counts of a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberHistoryResponse "History"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id}/history [get]
func (h *MemberHandler) GetHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "id", "member")
	if !ok {
		return
	}

	history, err := h.memberService.History(c.Request.Context(), userID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// UploadPhoto handles POST /members/:id/photo
// @Summary Upload a member photo
// @Tags members
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param file formData file true "Image file"
// @Success 200 {object} service.MemberResponse "Member updated"
// @Failure 400 {object} ErrorResponse "Missing, oversized or unsupported file"
// @Failure 403 {object} ErrorResponse "Only admins can change member photos"
// @Security BearerAuth
// @Router /members/{id}/photo [post]
func (h *MemberHandler) UploadPhoto(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "id", "member")
	if !ok {
		return
	}
	upload, closeFile, ok := formUpload(c, "file")
	if !ok {
		return
	}
	defer closeFile()

	member, err := h.memberService.UploadPhoto(c.Request.Context(), userID, memberID, upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}
