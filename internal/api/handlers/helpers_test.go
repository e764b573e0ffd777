package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"quemjoga-backend/internal/auth"
	"quemjoga-backend/internal/database/models"
	"quemjoga-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func testUser() *models.User {
	email := "jogador@test.com"
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Jogador",
		Email:     &email,
		Role:      models.UserRolePlayer,
		IsActive:  true,
	}
}

// authenticatedAs stands in for the JWT middleware
func authenticatedAs(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			auth.SetUser(c, user)
		}
		c.Next()
	}
}

// newHTTPTest builds a test router whose /api/v1 group runs as user; nil leaves requests anonymous
func newHTTPTest(user *models.User) (*testutils.HTTPTestSuite, *gin.RouterGroup) {
	h := testutils.SetupHTTPTest()
	v1 := h.Router.Group("/api/v1", authenticatedAs(user))
	return h, v1
}

// multipartRequest builds a request carrying one file under field
func multipartRequest(method, url, field, filename string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile(field, filename)
	_, _ = part.Write(content)
	_ = writer.Close()

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
