package handlers

import (
	"net/http"

	"quemjoga-backend/internal/database/models"
	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler handles HTTP requests for match RSVPs
type AttendanceHandler struct {
	attendanceService service.AttendanceServiceInterface
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService service.AttendanceServiceInterface) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// SubmitAttendance handles POST /attendance
// @Summary Answer a match RSVP
// @Description Record the status of a member for a match. Answering again overwrites the status.
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body service.SubmitAttendanceRequest true "RSVP"
// @Success 200 {object} service.AttendanceResponse "RSVP recorded"
// @Failure 400 {object} ErrorResponse "Invalid request or canceled match"
// @Failure 404 {object} ErrorResponse "Match or member not found"
// @Security BearerAuth
// @Router /attendance [post]
func (h *AttendanceHandler) SubmitAttendance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.SubmitAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	attendance, err := h.attendanceService.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attendance)
}

// UpdateAttendance handles PATCH /attendance/:id
// @Summary Change an RSVP
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path string true "Attendance ID (UUID)"
// @Param attendance body service.UpdateAttendanceRequest true "New status"
// @Success 200 {object} service.AttendanceResponse "RSVP updated"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Attendance not found"
// @Security BearerAuth
// @Router /attendance/{id} [patch]
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	attendanceID, ok := paramUUID(c, "id", "attendance")
	if !ok {
		return
	}
	var req service.UpdateAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	attendance, err := h.attendanceService.Update(c.Request.Context(), userID, attendanceID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attendance)
}

// Confirm handles POST /matches/:id/members/:memberId/confirm
// @Summary Confirm presence
// @Tags attendance
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param memberId path string true "Member ID (UUID)"
// @Success 200 {object} service.AttendanceResponse "Presence confirmed"
// @Failure 404 {object} ErrorResponse "Attendance not found"
// @Security BearerAuth
// @Router /matches/{id}/members/{memberId}/confirm [post]
func (h *AttendanceHandler) Confirm(c *gin.Context) {
	h.setStatus(c, models.AttendanceStatusConfirmed)
}

// Decline handles POST /matches/:id/members/:memberId/decline
// @Summary Decline presence
// @Tags attendance
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param memberId path string true "Member ID (UUID)"
// @Success 200 {object} service.AttendanceResponse "Presence declined"
// @Failure 404 {object} ErrorResponse "Attendance not found"
// @Security BearerAuth
// @Router /matches/{id}/members/{memberId}/decline [post]
func (h *AttendanceHandler) Decline(c *gin.Context) {
	h.setStatus(c, models.AttendanceStatusDeclined)
}

func (h *AttendanceHandler) setStatus(c *gin.Context, status models.AttendanceStatus) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	matchID, ok := paramUUID(c, "id", "match")
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "memberId", "member")
	if !ok {
		return
	}

	attendance, err := h.attendanceService.SetStatus(c.Request.Context(), userID, matchID, memberID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attendance)
}
