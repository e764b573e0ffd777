package handlers

import (
	"net/http"

	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for the caller's athlete profile
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile handles GET /profile/me
// @Summary Get my profile
// @Description The profile is created from the account on first access
// @Tags profile
// @Produce json
// @Success 200 {object} service.ProfileResponse "Profile"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /profile/me [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PATCH /profile/me
// @Summary Update my profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} service.ProfileResponse "Profile updated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /profile/me [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadPhoto handles POST /profile/me/photo
// @Summary Upload my photo
// @Description Replaces the previous photo and updates the photo of every member linked to the account
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} service.ProfileResponse "Profile updated"
// @Failure 400 {object} ErrorResponse "Missing, oversized or unsupported file"
// @Security BearerAuth
// @Router /profile/me/photo [post]
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	upload, closeFile, ok := formUpload(c, "file")
	if !ok {
		return
	}
	defer closeFile()

	profile, err := h.profileService.UploadPhoto(c.Request.Context(), user, upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeletePhoto handles DELETE /profile/me/photo
// @Summary Remove my photo
// @Tags profile
// @Produce json
// @Success 200 {object} service.ProfileResponse "Profile updated"
// @Failure 404 {object} ErrorResponse "Profile has no photo"
// @Security BearerAuth
// @Router /profile/me/photo [delete]
func (h *ProfileHandler) DeletePhoto(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.DeletePhoto(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
