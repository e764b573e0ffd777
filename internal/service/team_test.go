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
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	tx             *mocks.MockTransactorInterface
	teamRepo       *mocks.MockTeamRepositoryInterface
	teamMemberRepo *mocks.MockTeamMemberRepositoryInterface
	memberRepo     *mocks.MockMemberRepositoryInterface
	groupRepo      *mocks.MockGroupRepositoryInterface
	access         *mocks.MockAccessControlInterface
	service        *service.TeamService
	ctx            context.Context
	adminID        uuid.UUID
	team           *models.Team
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tx = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.teamMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.memberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.groupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.access = mocks.NewMockAccessControlInterface(suite.ctrl)
	suite.service = service.NewTeamService(
		suite.tx, suite.teamRepo, suite.teamMemberRepo, suite.memberRepo,
		suite.groupRepo, suite.access, service.NewValidator(),
	)
	suite.ctx = context.Background()
	suite.adminID = uuid.New()
	suite.team = &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: uuid.New(), Name: "Azul", IsActive: true}
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreateTeam() {
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.team.GroupID).Return(nil)
	suite.groupRepo.EXPECT().GetByID(suite.ctx, suite.team.GroupID).Return(&models.Group{}, nil)
	suite.teamRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, suite.adminID, &service.CreateTeamRequest{
		GroupID: suite.team.GroupID,
		Name:    "Vermelho",
		Color:   "#ff0000",
	})

	suite.Require().NoError(err)
	suite.Equal("Vermelho", resp.Name)
	suite.True(resp.IsActive)
}

func (suite *TeamServiceTestSuite) TestCreateTeamRequiresAdmin() {
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.team.GroupID).Return(apperrors.ErrNotGroupAdmin)

	_, err := suite.service.Create(suite.ctx, suite.adminID, &service.CreateTeamRequest{GroupID: suite.team.GroupID, Name: "X"})

	suite.ErrorIs(err, apperrors.ErrNotGroupAdmin)
}

// TestAddMemberClosesPreviousTeam moves a member into the team, closing any other active team in the group
func (suite *TeamServiceTestSuite) TestAddMemberClosesPreviousTeam() {
	member := &models.Member{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: suite.team.GroupID, Name: "Lucas"}

	suite.teamRepo.EXPECT().GetByID(suite.ctx, suite.team.ID).Return(suite.team, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.team.GroupID).Return(nil)
	suite.memberRepo.EXPECT().GetByID(suite.ctx, member.ID).Return(member, nil)
	expectTx(suite.tx)
	gomock.InOrder(
		suite.teamMemberRepo.EXPECT().GetActive(suite.ctx, suite.team.ID, member.ID).Return(nil, gorm.ErrRecordNotFound),
		suite.teamMemberRepo.EXPECT().DeactivateInGroup(suite.ctx, suite.team.GroupID, member.ID, gomock.Any()).Return(nil),
		suite.teamMemberRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil),
	)

	resp, err := suite.service.AddMember(suite.ctx, suite.adminID, suite.team.ID, &service.AddTeamMemberRequest{
		MemberID:  member.ID,
		IsStarter: true,
	})

	suite.Require().NoError(err)
	suite.True(resp.IsActive)
	suite.True(resp.IsStarter)
	suite.Equal("Lucas", resp.Name)
	suite.False(resp.Since.IsZero())
}

func (suite *TeamServiceTestSuite) TestAddMemberTwiceConflicts() {
	member := &models.Member{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: suite.team.GroupID}

	suite.teamRepo.EXPECT().GetByID(suite.ctx, suite.team.ID).Return(suite.team, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.team.GroupID).Return(nil)
	suite.memberRepo.EXPECT().GetByID(suite.ctx, member.ID).Return(member, nil)
	expectTx(suite.tx)
	suite.teamMemberRepo.EXPECT().GetActive(suite.ctx, suite.team.ID, member.ID).Return(&models.TeamMember{IsActive: true}, nil)

	_, err := suite.service.AddMember(suite.ctx, suite.adminID, suite.team.ID, &service.AddTeamMemberRequest{MemberID: member.ID})

	suite.ErrorIs(err, apperrors.ErrTeamMemberExists)
}

func (suite *TeamServiceTestSuite) TestAddMemberFromAnotherGroup() {
	member := &models.Member{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: uuid.New()}

	suite.teamRepo.EXPECT().GetByID(suite.ctx, suite.team.ID).Return(suite.team, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.team.GroupID).Return(nil)
	suite.memberRepo.EXPECT().GetByID(suite.ctx, member.ID).Return(member, nil)

	_, err := suite.service.AddMember(suite.ctx, suite.adminID, suite.team.ID, &service.AddTeamMemberRequest{MemberID: member.ID})

	suite.ErrorIs(err, apperrors.ErrMemberNotInGroup)
}

func (suite *TeamServiceTestSuite) TestRemoveMemberSetsUntil() {
	memberID := uuid.New()
	teamMember := &models.TeamMember{TeamID: suite.team.ID, MemberID: memberID, IsActive: true}

	suite.teamRepo.EXPECT().GetByID(suite.ctx, suite.team.ID).Return(suite.team, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.team.GroupID).Return(nil)
	suite.teamMemberRepo.EXPECT().GetActive(suite.ctx, suite.team.ID, memberID).Return(teamMember, nil)
	suite.teamMemberRepo.EXPECT().Update(suite.ctx, teamMember).Return(nil)

	suite.NoError(suite.service.RemoveMember(suite.ctx, suite.adminID, suite.team.ID, memberID))
	suite.False(teamMember.IsActive)
	suite.NotNil(teamMember.Until)
}

func (suite *TeamServiceTestSuite) TestInactiveTeamIsNotFound() {
	suite.team.IsActive = false
	suite.teamRepo.EXPECT().GetByID(suite.ctx, suite.team.ID).Return(suite.team, nil)

	err := suite.service.RemoveMember(suite.ctx, suite.adminID, suite.team.ID, uuid.New())

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
