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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTeamHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockTeamServiceInterface(ctrl)
	handler := NewTeamHandler(mockService)
	user := testUser()
	h, v1 := newHTTPTest(user)
	v1.GET("/groups/:id/teams", handler.ListTeams)
	v1.POST("/teams", handler.CreateTeam)
	v1.POST("/teams/:id/members", handler.AddMember)
	v1.DELETE("/teams/:id/members/:memberId", handler.RemoveMember)

	t.Run("create", func(t *testing.T) {
		groupID := uuid.New()
		mockService.EXPECT().
			Create(gomock.Any(), user.ID, &service.CreateTeamRequest{GroupID: groupID, Name: "Azul", Color: "blue"}).
			Return(&service.TeamResponse{ID: uuid.New(), GroupID: groupID, Name: "Azul"}, nil)

		recorder := h.MakeRequest(http.MethodPost, "/api/v1/teams", service.CreateTeamRequest{GroupID: groupID, Name: "Azul", Color: "blue"})

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("create duplicate name", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), user.ID, gomock.Any()).
			Return(nil, apperrors.NewAlreadyExistsError("team", "with this name"))

		recorder := h.MakeRequest(http.MethodPost, "/api/v1/teams", service.CreateTeamRequest{GroupID: uuid.New(), Name: "Azul"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "team already exists")
	})

	t.Run("list", func(t *testing.T) {
		groupID := uuid.New()
		mockService.EXPECT().List(gomock.Any(), user.ID, groupID).Return([]service.TeamResponse{{Name: "Azul"}, {Name: "Branco"}}, nil)

		recorder := h.MakeRequest(http.MethodGet, "/api/v1/groups/"+groupID.String()+"/teams", nil)

		var response []service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
	})

	t.Run("add member already on team", func(t *testing.T) {
		teamID := uuid.New()
		mockService.EXPECT().
			AddMember(gomock.Any(), user.ID, teamID, gomock.Any()).
			Return(nil, apperrors.ErrTeamMemberExists)

		recorder := h.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/members", service.AddTeamMemberRequest{MemberID: uuid.New()})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("remove member", func(t *testing.T) {
		teamID, memberID := uuid.New(), uuid.New()
		mockService.EXPECT().RemoveMember(gomock.Any(), user.ID, teamID, memberID).Return(nil)

		recorder := h.MakeRequest(http.MethodDelete, "/api/v1/teams/"+teamID.String()+"/members/"+memberID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestInviteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockInviteServiceInterface(ctrl)
	handler := NewInviteHandler(mockService)
	user := testUser()
	h, v1 := newHTTPTest(user)
	v1.POST("/invites", handler.CreateInvite)
	v1.GET("/invites/:token", handler.GetInvite)
	v1.POST("/invites/accept", handler.AcceptInvite)
	v1.DELETE("/invites/:id", handler.CancelInvite)
	v1.GET("/groups/:id/invites", handler.ListPendingInvites)

	t.Run("create", func(t *testing.T) {
		groupID := uuid.New()
		mockService.EXPECT().
			Create(gomock.Any(), user.ID, &service.CreateInviteRequest{GroupID: groupID, Email: "amigo@test.com"}).
			Return(&service.InviteResponse{ID: uuid.New(), Token: "tok", GroupID: groupID}, nil)

		recorder := h.MakeRequest(http.MethodPost, "/api/v1/invites", service.CreateInviteRequest{GroupID: groupID, Email: "amigo@test.com"})

		var response service.InviteResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "tok", response.Token)
	})

	t.Run("get by token", func(t *testing.T) {
		mockService.EXPECT().GetByToken(gomock.Any(), "tok").Return(&service.InviteResponse{Token: "tok", GroupName: "Racha"}, nil)

		recorder := h.MakeRequest(http.MethodGet, "/api/v1/invites/tok", nil)

		var response service.InviteResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Racha", response.GroupName)
	})

	t.Run("accept passes the authenticated account", func(t *testing.T) {
		mockService.EXPECT().
			Accept(gomock.Any(), user, "tok").
			Return(&service.InviteResponse{Token: "tok"}, nil)

		recorder := h.MakeRequest(http.MethodPost, "/api/v1/invites/accept", service.AcceptInviteRequest{Token: "tok"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("accept expired", func(t *testing.T) {
		mockService.EXPECT().Accept(gomock.Any(), user, "old").Return(nil, apperrors.ErrInviteExpired)

		recorder := h.MakeRequest(http.MethodPost, "/api/v1/invites/accept", service.AcceptInviteRequest{Token: "old"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "expired")
	})

	t.Run("cancel", func(t *testing.T) {
		inviteID := uuid.New()
		mockService.EXPECT().Cancel(gomock.Any(), user.ID, inviteID).Return(&service.InviteResponse{ID: inviteID}, nil)

		recorder := h.MakeRequest(http.MethodDelete, "/api/v1/invites/"+inviteID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("list pending", func(t *testing.T) {
		groupID := uuid.New()
		mockService.EXPECT().ListPending(gomock.Any(), user.ID, groupID).Return([]service.InviteResponse{}, nil)

		recorder := h.MakeRequest(http.MethodGet, "/api/v1/groups/"+groupID.String()+"/invites", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestCardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockCardServiceInterface(ctrl)
	handler := NewCardHandler(mockService)
	user := testUser()
	h, v1 := newHTTPTest(user)
	v1.POST("/cards", handler.IssueCard)
	v1.GET("/members/:id/cards", handler.ListMemberCards)
	v1.DELETE("/members/:id/cards/:type", handler.RemoveLatestCard)

	t.Run("issue", func(t *testing.T) {
		memberID := uuid.New()
		mockService.EXPECT().
			Issue(gomock.Any(), user.ID, &service.IssueCardRequest{MemberID: memberID, Type: models.CardTypeRed, Reason: "Agressão"}).
			Return(&service.CardResponse{}, nil)

		recorder := h.MakeRequest(http.MethodPost, "/api/v1/cards", service.IssueCardRequest{MemberID: memberID, Type: models.CardTypeRed, Reason: "Agressão"})

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("issue without any match", func(t *testing.T) {
		mockService.EXPECT().Issue(gomock.Any(), user.ID, gomock.Any()).Return(nil, apperrors.ErrNoMatchForCard)

		recorder := h.MakeRequest(http.MethodPost, "/api/v1/cards", service.IssueCardRequest{MemberID: uuid.New(), Type: models.CardTypeYellow})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "no match")
	})

	t.Run("remove latest", func(t *testing.T) {
		memberID, cardID, fineID := uuid.New(), uuid.New(), uuid.New()
		mockService.EXPECT().
			RemoveLatest(gomock.Any(), user.ID, memberID, models.CardTypeYellow).
			Return(&service.CardRemovalResponse{CardID: cardID, FinePaymentID: &fineID}, nil)

		recorder := h.MakeRequest(http.MethodDelete, "/api/v1/members/"+memberID.String()+"/cards/yellow", nil)

		var response service.CardRemovalResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, cardID, response.CardID)
		require.NotNil(t, response.FinePaymentID)
		assert.Equal(t, fineID, *response.FinePaymentID)
	})

	t.Run("list", func(t *testing.T) {
		memberID := uuid.New()
		mockService.EXPECT().ListByMember(gomock.Any(), user.ID, memberID).Return([]service.CardResponse{{}, {}}, nil)

		recorder := h.MakeRequest(http.MethodGet, "/api/v1/members/"+memberID.String()+"/cards", nil)

		var response []service.CardResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
	})
}

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockStatsServiceInterface(ctrl)
	handler := NewStatsHandler(mockService)
	user := testUser()
	h, v1 := newHTTPTest(user)
	v1.GET("/groups/:id/scorers", handler.GetLeaderboard)
	v1.PATCH("/groups/:id/scorers/:memberId", handler.UpdateStats)

	groupID, memberID := uuid.New(), uuid.New()
	goals := 2
	mockService.EXPECT().
		Leaderboard(gomock.Any(), user.ID, groupID).
		Return([]service.ScorerResponse{{MemberID: memberID, Goals: 7}}, nil)
	mockService.EXPECT().
		Update(gomock.Any(), user.ID, groupID, memberID, &service.UpdateStatsRequest{Goals: &goals}).
		Return(&service.ScorerResponse{MemberID: memberID, Goals: 2}, nil)

	recorder := h.MakeRequest(http.MethodGet, "/api/v1/groups/"+groupID.String()+"/scorers", nil)
	var board []service.ScorerResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &board)
	require.Len(t, board, 1)
	assert.Equal(t, 7, board[0].Goals)

	recorder = h.MakeRequest(http.MethodPatch, "/api/v1/groups/"+groupID.String()+"/scorers/"+memberID.String(), map[string]int{"goals": 2})
	var scorer service.ScorerResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &scorer)
	assert.Equal(t, 2, scorer.Goals)
}

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockProfileServiceInterface(ctrl)
	handler := NewProfileHandler(mockService)
	user := testUser()
	h, v1 := newHTTPTest(user)
	v1.GET("/profile/me", handler.GetProfile)
	v1.PATCH("/profile/me", handler.UpdateProfile)
	v1.POST("/profile/me/photo", handler.UploadPhoto)
	v1.DELETE("/profile/me/photo", handler.DeletePhoto)

	t.Run("get", func(t *testing.T) {
		mockService.EXPECT().Get(gomock.Any(), user).Return(&service.ProfileResponse{UserID: user.ID, Name: user.Name}, nil)

		recorder := h.MakeRequest(http.MethodGet, "/api/v1/profile/me", nil)

		var response service.ProfileResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, user.ID, response.UserID)
	})

	t.Run("update", func(t *testing.T) {
		foot := models.PreferredFootLeft
		mockService.EXPECT().
			Update(gomock.Any(), user, &service.UpdateProfileRequest{PreferredFoot: &foot}).
			Return(&service.ProfileResponse{PreferredFoot: foot}, nil)

		recorder := h.MakeRequest(http.MethodPatch, "/api/v1/profile/me", map[string]string{"preferred_foot": "left"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("upload photo", func(t *testing.T) {
		mockService.EXPECT().
			UploadPhoto(gomock.Any(), user, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.User, upload storage.Upload) (*service.ProfileResponse, error) {
				assert.Equal(t, "eu.jpg", upload.Filename)
				return &service.ProfileResponse{PhotoURL: "/uploads/profiles/eu.jpg"}, nil
			})

		req := multipartRequest(http.MethodPost, "/api/v1/profile/me/photo", "file", "eu.jpg", []byte{0xff, 0xd8, 0xff})
		recorder := h.Serve(req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("delete missing photo", func(t *testing.T) {
		mockService.EXPECT().DeletePhoto(gomock.Any(), user).Return(nil, apperrors.ErrPhotoNotFound)

		recorder := h.MakeRequest(http.MethodDelete, "/api/v1/profile/me/photo", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "photo not found")
	})
}
