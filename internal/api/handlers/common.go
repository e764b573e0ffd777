package handlers

import (
	"net/http"
	"strconv"

	"quemjoga-backend/internal/auth"
	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"
	"quemjoga-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MessageResponse represents a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// internalErrorMessage is the only body clients see for unclassified failures
const internalErrorMessage = "internal server error"

// respondError writes err with the status of its error class.
// Unclassified errors are logged in full and answered with a generic body.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
		c.JSON(status, ErrorResponse{Error: internalErrorMessage})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// bindJSON decodes the request body and answers 400 when it is malformed
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// requireUserID returns the authenticated user id or answers 401
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return uuid.Nil, false
	}
	return userID, true
}

// currentUser returns the authenticated account or answers 401
func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := auth.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return nil, false
	}
	return user, true
}

// paramUUID parses a path parameter as a UUID or answers 400
func paramUUID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional query parameter as a UUID.
// A malformed value answers 400 and reports ok=false.
func queryUUID(c *gin.Context, name, label string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return nil, false
	}
	return &id, true
}

// pageParams reads page and page_size; the service clamps them
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 20
	}
	return page, pageSize
}

// boolQuery reads a boolean query parameter with a fallback
func boolQuery(c *gin.Context, name string, fallback bool) bool {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

// formUpload opens the multipart file under field and answers 400 when absent
func formUpload(c *gin.Context, field string) (storage.Upload, func(), bool) {
	header, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: field + " is required"})
		return storage.Upload{}, nil, false
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return storage.Upload{}, nil, false
	}
	upload := storage.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}
	return upload, func() { _ = file.Close() }, true
}
