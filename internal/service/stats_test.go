package service_test

import (
	"context"
	"testing"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/mocks"
	"quemjoga-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	statRepo   *mocks.MockMemberStatRepositoryInterface
	memberRepo *mocks.MockMemberRepositoryInterface
	access     *mocks.MockAccessControlInterface
	service    *service.StatsService
	ctx        context.Context
	userID     uuid.UUID
	groupID    uuid.UUID
}

func (suite *StatsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.statRepo = mocks.NewMockMemberStatRepositoryInterface(suite.ctrl)
	suite.memberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.access = mocks.NewMockAccessControlInterface(suite.ctrl)
	suite.service = service.NewStatsService(suite.statRepo, suite.memberRepo, suite.access, service.NewValidator())
	suite.ctx = context.Background()
	suite.userID = uuid.New()
	suite.groupID = uuid.New()
}

func (suite *StatsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StatsServiceTestSuite) TestLeaderboardInitializesMissingRows() {
	first := models.Member{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ana"}
	second := models.Member{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Bia"}

	suite.access.EXPECT().RequireMembership(suite.ctx, suite.userID, suite.groupID).Return(nil)
	suite.memberRepo.EXPECT().ListActiveByGroup(suite.ctx, suite.groupID).Return([]models.Member{first, second}, nil)
	suite.statRepo.EXPECT().EnsureForMembers(suite.ctx, suite.groupID, []uuid.UUID{first.ID, second.ID}).Return(nil)
	suite.statRepo.EXPECT().ListByGroup(suite.ctx, suite.groupID).Return([]models.MemberStat{
		{MemberID: second.ID, Goals: 4, Assists: 1, Member: &second},
		{MemberID: first.ID, Goals: 0, Member: &first},
	}, nil)

	board, err := suite.service.Leaderboard(suite.ctx, suite.userID, suite.groupID)

	suite.Require().NoError(err)
	suite.Require().Len(board, 2)
	suite.Equal("Bia", board[0].Name)
	suite.Equal(4, board[0].Goals)
	suite.Equal(0, board[1].Goals)
}

func (suite *StatsServiceTestSuite) TestLeaderboardOfEmptyGroup() {
	suite.access.EXPECT().RequireMembership(suite.ctx, suite.userID, suite.groupID).Return(nil)
	suite.memberRepo.EXPECT().ListActiveByGroup(suite.ctx, suite.groupID).Return(nil, nil)
	suite.statRepo.EXPECT().ListByGroup(suite.ctx, suite.groupID).Return(nil, nil)

	board, err := suite.service.Leaderboard(suite.ctx, suite.userID, suite.groupID)

	suite.Require().NoError(err)
	suite.Empty(board)
}

func (suite *StatsServiceTestSuite) TestUpdate() {
	member := &models.Member{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: suite.groupID, Name: "Ana"}
	stat := &models.MemberStat{MemberID: member.ID, GroupID: suite.groupID, Goals: 2, Assists: 3}

	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.userID, suite.groupID).Return(nil)
	suite.memberRepo.EXPECT().GetByID(suite.ctx, member.ID).Return(member, nil)
	suite.statRepo.EXPECT().GetOrCreate(suite.ctx, suite.groupID, member.ID).Return(stat, nil)
	suite.statRepo.EXPECT().Update(suite.ctx, stat).Return(nil)

	resp, err := suite.service.Update(suite.ctx, suite.userID, suite.groupID, member.ID, &service.UpdateStatsRequest{Goals: intPtr(5)})

	suite.Require().NoError(err)
	suite.Equal(5, resp.Goals)
	suite.Equal(3, resp.Assists)
}

func (suite *StatsServiceTestSuite) TestUpdateMemberFromAnotherGroup() {
	member := &models.Member{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: uuid.New()}

	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.userID, suite.groupID).Return(nil)
	suite.memberRepo.EXPECT().GetByID(suite.ctx, member.ID).Return(member, nil)

	_, err := suite.service.Update(suite.ctx, suite.userID, suite.groupID, member.ID, &service.UpdateStatsRequest{Goals: intPtr(1)})

	suite.ErrorIs(err, apperrors.ErrMemberNotInGroup)
}

func (suite *StatsServiceTestSuite) TestUpdateRejectsNegativeGoals() {
	_, err := suite.service.Update(suite.ctx, suite.userID, suite.groupID, uuid.New(), &service.UpdateStatsRequest{Goals: intPtr(-1)})

	suite.True(apperrors.IsValidation(err))
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
