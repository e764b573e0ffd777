package handlers

import (
	"context"
	"net/http"
	"testing"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/mocks"
	"quemjoga-backend/internal/service"
	"quemjoga-backend/internal/storage"
	"quemjoga-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MemberHandlerTestSuite tests the MemberHandler
type MemberHandlerTestSuite struct {
	suite.Suite
	http        *testutils.HTTPTestSuite
	ctrl        *gomock.Controller
	mockService *mocks.MockMemberServiceInterface
	user        *models.User
}

// SetupTest sets up each individual test
func (suite *MemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMemberServiceInterface(suite.ctrl)
	suite.user = testUser()

	handler := NewMemberHandler(suite.mockService)
	h, v1 := newHTTPTest(suite.user)
	suite.http = h
	v1.GET("/groups/:id/members", handler.ListMembers)
	members := v1.Group("/members")
	{
		members.POST("", handler.CreateMember)
		members.GET("/:id", handler.GetMember)
		members.DELETE("/:id", handler.DeleteMember)
		members.GET("/:id/history", handler.GetHistory)
		members.POST("/:id/photo", handler.UploadPhoto)
	}
}

// TearDownTest cleans up after each test
func (suite *MemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMember tests adding a member to a group
func (suite *MemberHandlerTestSuite) TestCreateMember() {
	groupID := uuid.New()
	memberID := uuid.New()
	jersey := 10

	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.CreateMemberRequest) (*service.MemberResponse, error) {
			suite.Equal(groupID, req.GroupID)
			suite.Equal(models.PositionForward, req.Position)
			suite.Require().NotNil(req.JerseyNumber)
			suite.Equal(10, *req.JerseyNumber)
			return &service.MemberResponse{ID: memberID, GroupID: groupID, Name: req.Name, IsActive: true}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/members", service.CreateMemberRequest{
		GroupID:      groupID,
		Name:         "Romário",
		Position:     models.PositionForward,
		JerseyNumber: &jersey,
	})

	var response service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(memberID, response.ID)
}

// TestCreateMemberLimitReached tests the member cap reaching the client as 400
func (suite *MemberHandlerTestSuite) TestCreateMemberLimitReached() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.user.ID, gomock.Any()).
		Return(nil, apperrors.ErrMemberLimitReached)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/members", service.CreateMemberRequest{GroupID: uuid.New(), Name: "Extra"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "maximum number of members")
}

// TestListMembersWithPosition tests the position filter
func (suite *MemberHandlerTestSuite) TestListMembersWithPosition() {
	groupID := uuid.New()
	goalkeeper := models.PositionGoalkeeper
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.user.ID, groupID, service.MemberListFilter{Position: &goalkeeper, ActiveOnly: true}, 1, 20).
		Return(&service.MemberListResponse{}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/groups/"+groupID.String()+"/members?position=goalkeeper", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestListMembersInvalidPosition tests an unknown position
func (suite *MemberHandlerTestSuite) TestListMembersInvalidPosition() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/groups/"+uuid.NewString()+"/members?position=striker", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid position")
}

// TestGetMemberNotFound tests a missing member
func (suite *MemberHandlerTestSuite) TestGetMemberNotFound() {
	memberID := uuid.New()
	suite.mockService.EXPECT().Get(gomock.Any(), suite.user.ID, memberID).Return(nil, apperrors.ErrMemberNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/members/"+memberID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "member not found")
}

// TestDeleteMember tests deactivating a member
func (suite *MemberHandlerTestSuite) TestDeleteMember() {
	memberID := uuid.New()
	suite.mockService.EXPECT().Deactivate(gomock.Any(), suite.user.ID, memberID).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/members/"+memberID.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestGetHistory tests the member history summary
func (suite *MemberHandlerTestSuite) TestGetHistory() {
	memberID := uuid.New()
	suite.mockService.EXPECT().
		History(gomock.Any(), suite.user.ID, memberID).
		Return(&service.MemberHistoryResponse{MemberID: memberID}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/members/"+memberID.String()+"/history", nil)

	var response service.MemberHistoryResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(memberID, response.MemberID)
}

// TestUploadPhoto tests that the multipart file reaches the service
func (suite *MemberHandlerTestSuite) TestUploadPhoto() {
	memberID := uuid.New()
	suite.mockService.EXPECT().
		UploadPhoto(gomock.Any(), suite.user.ID, memberID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, upload storage.Upload) (*service.MemberResponse, error) {
			suite.Equal("foto.png", upload.Filename)
			suite.Equal(int64(4), upload.Size)
			return &service.MemberResponse{ID: memberID, PhotoURL: "/uploads/members/x.png"}, nil
		})

	req := multipartRequest(http.MethodPost, "/api/v1/members/"+memberID.String()+"/photo", "file", "foto.png", []byte("\x89PNG"))
	recorder := suite.http.Serve(req)

	var response service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("/uploads/members/x.png", response.PhotoURL)
}

// TestUploadPhotoMissingFile tests a request without a file
func (suite *MemberHandlerTestSuite) TestUploadPhotoMissingFile() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/members/"+uuid.NewString()+"/photo", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "file is required")
}

// TestMemberHandlerTestSuite runs the test suite
func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}
