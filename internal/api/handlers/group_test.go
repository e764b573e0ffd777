package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/mocks"
	"quemjoga-backend/internal/service"
	"quemjoga-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GroupHandlerTestSuite tests the GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	http        *testutils.HTTPTestSuite
	ctrl        *gomock.Controller
	mockService *mocks.MockGroupServiceInterface
	user        *models.User
}

// SetupTest sets up each individual test
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.user = testUser()

	handler := NewGroupHandler(suite.mockService)
	h, v1 := newHTTPTest(suite.user)
	suite.http = h
	groups := v1.Group("/groups")
	{
		groups.POST("", handler.CreateGroup)
		groups.GET("", handler.ListGroups)
		groups.GET("/:id", handler.GetGroup)
		groups.PATCH("/:id", handler.UpdateGroup)
		groups.DELETE("/:id", handler.DeleteGroup)
		groups.GET("/:id/balance", handler.GetBalance)
	}
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGroup tests creating a new group
func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	groupID := uuid.New()
	request := service.CreateGroupRequest{Name: "Racha de Quinta", Type: models.GroupTypeFutsal}

	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.CreateGroupRequest) (*service.GroupResponse, error) {
			suite.Equal("Racha de Quinta", req.Name)
			suite.Equal(models.GroupTypeFutsal, req.Type)
			return &service.GroupResponse{ID: groupID, Name: req.Name, Type: req.Type, MaxMembers: 15}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/groups", request)

	var response service.GroupResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(groupID, response.ID)
	suite.Equal(15, response.MaxMembers)
}

// TestCreateGroupInvalidJSON tests a malformed body
func (suite *GroupHandlerTestSuite) TestCreateGroupInvalidJSON() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/groups", "not-an-object")

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestCreateGroupValidationError tests that service validation maps to 400
func (suite *GroupHandlerTestSuite) TestCreateGroupValidationError() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.user.ID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "failed on the 'required' rule"))

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/groups", service.CreateGroupRequest{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "name")
}

// TestListGroupsDefaults tests that groups are listed active-only on the first page by default
func (suite *GroupHandlerTestSuite) TestListGroupsDefaults() {
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.user.ID, true, 1, 20).
		Return(&service.GroupListResponse{Groups: []service.GroupResponse{}, Page: 1, PageSize: 20}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/groups", nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

// TestListGroupsAllWithPaging tests query parameters reaching the service
func (suite *GroupHandlerTestSuite) TestListGroupsAllWithPaging() {
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.user.ID, false, 2, 5).
		Return(&service.GroupListResponse{Page: 2, PageSize: 5, Total: 7}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/groups?active_only=false&page=2&page_size=5", nil)

	var response service.GroupListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(7), response.Total)
}

// TestGetGroupInvalidID tests a malformed path parameter
func (suite *GroupHandlerTestSuite) TestGetGroupInvalidID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/groups/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid group ID")
}

// TestGetGroupErrors tests the error class to status mapping
func (suite *GroupHandlerTestSuite) TestGetGroupErrors() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: apperrors.ErrGroupNotFound, status: http.StatusNotFound},
		{name: "not a member", err: apperrors.ErrNotGroupMember, status: http.StatusForbidden},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			groupID := uuid.New()
			suite.mockService.EXPECT().Get(gomock.Any(), suite.user.ID, groupID).Return(nil, tc.err)

			recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/groups/"+groupID.String(), nil)

			suite.Equal(tc.status, recorder.Code)
		})
	}
}

// TestGetGroupHidesInternalError tests that unclassified failures do not reach the client
func (suite *GroupHandlerTestSuite) TestGetGroupHidesInternalError() {
	groupID := uuid.New()
	suite.mockService.EXPECT().
		Get(gomock.Any(), suite.user.ID, groupID).
		Return(nil, errors.New("pq: relation \"groups\" does not exist"))

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/groups/"+groupID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "internal server error")
	suite.NotContains(recorder.Body.String(), "pq:")
}

// TestUpdateGroupForbidden tests that non-admin updates are rejected
func (suite *GroupHandlerTestSuite) TestUpdateGroupForbidden() {
	groupID := uuid.New()
	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.user.ID, groupID, gomock.Any()).
		Return(nil, apperrors.ErrNotGroupAdmin)

	recorder := suite.http.MakeRequest(http.MethodPatch, "/api/v1/groups/"+groupID.String(), map[string]interface{}{"name": "Novo"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "only group admins")
}

// TestDeleteGroup tests deactivating a group
func (suite *GroupHandlerTestSuite) TestDeleteGroup() {
	groupID := uuid.New()
	suite.mockService.EXPECT().Deactivate(gomock.Any(), suite.user.ID, groupID).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/groups/"+groupID.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestGetBalance tests the ledger totals endpoint
func (suite *GroupHandlerTestSuite) TestGetBalance() {
	groupID := uuid.New()
	suite.mockService.EXPECT().
		Balance(gomock.Any(), suite.user.ID, groupID).
		Return(&service.BalanceResponse{}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/groups/"+groupID.String()+"/balance", nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

// TestGroupHandlerTestSuite runs the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}

// TestGroupHandlerRequiresAuthentication tests anonymous access
func TestGroupHandlerRequiresAuthentication(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewGroupHandler(mocks.NewMockGroupServiceInterface(ctrl))
	h, v1 := newHTTPTest(nil)
	v1.GET("/groups", handler.ListGroups)

	recorder := h.MakeRequest(http.MethodGet, "/api/v1/groups", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "authentication required")
}
