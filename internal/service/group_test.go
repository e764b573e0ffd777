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

// GroupServiceTestSuite defines the test suite for GroupService
type GroupServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	tx          *mocks.MockTransactorInterface
	groupRepo   *mocks.MockGroupRepositoryInterface
	adminRepo   *mocks.MockGroupAdminRepositoryInterface
	memberRepo  *mocks.MockMemberRepositoryInterface
	paymentRepo *mocks.MockPaymentRepositoryInterface
	userRepo    *mocks.MockUserRepositoryInterface
	access      *mocks.MockAccessControlInterface
	service     *service.GroupService
	ctx         context.Context
}

func (suite *GroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tx = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.groupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.adminRepo = mocks.NewMockGroupAdminRepositoryInterface(suite.ctrl)
	suite.memberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.paymentRepo = mocks.NewMockPaymentRepositoryInterface(suite.ctrl)
	suite.userRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.access = mocks.NewMockAccessControlInterface(suite.ctrl)
	suite.service = service.NewGroupService(
		suite.tx, suite.groupRepo, suite.adminRepo, suite.memberRepo,
		suite.paymentRepo, suite.userRepo, suite.access, service.NewValidator(),
	)
	suite.ctx = context.Background()
}

func (suite *GroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGroup checks that the creator becomes owner and gets a roster entry
func (suite *GroupServiceTestSuite) TestCreateGroup() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Carlos", IsActive: true}
	var created *models.Group

	suite.userRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)
	expectTx(suite.tx)
	suite.groupRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.Group) error {
			g.ID = uuid.New()
			created = g
			return nil
		})
	suite.adminRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.GroupAdmin) error {
			suite.True(a.IsOwner)
			suite.True(a.IsActive)
			suite.Equal(user.ID, a.UserID)
			suite.Equal(created.ID, a.GroupID)
			return nil
		})
	suite.memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Member) error {
			suite.True(m.BelongsTo(user.ID))
			suite.False(m.IsAdmin)
			suite.Equal("Carlos", m.Name)
			return nil
		})

	resp, err := suite.service.Create(suite.ctx, user.ID, &service.CreateGroupRequest{
		Name: "Pelada de Quinta",
		Type: models.GroupTypeFutsal,
	})

	suite.Require().NoError(err)
	suite.Equal(20, resp.MaxMembers)
	suite.Equal(int64(1000), resp.YellowCardFine)
	suite.Equal(int64(2000), resp.RedCardFine)
	suite.Equal(int64(1), resp.TotalMembers)
}

func (suite *GroupServiceTestSuite) TestCreateGroupDefaultsToSociety() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ana"}

	suite.userRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)
	expectTx(suite.tx)
	suite.groupRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.adminRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, user.ID, &service.CreateGroupRequest{
		Name:       "Society do Bairro",
		DuesAmount: int64Ptr(5000),
	})

	suite.Require().NoError(err)
	suite.Equal(models.GroupTypeSociety, resp.Type)
	suite.Equal(30, resp.MaxMembers)
	suite.Equal(int64(5000), resp.DuesAmount)
}

func (suite *GroupServiceTestSuite) TestCreateGroupValidation() {
	testCases := []struct {
		name    string
		request *service.CreateGroupRequest
		field   string
	}{
		{name: "Missing name", request: &service.CreateGroupRequest{}, field: "name"},
		{name: "Unknown type", request: &service.CreateGroupRequest{Name: "x", Type: "beach"}, field: "type"},
		{name: "Negative dues", request: &service.CreateGroupRequest{Name: "x", DuesAmount: int64Ptr(-1)}, field: "dues_amount"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.Create(suite.ctx, uuid.New(), tc.request)
			suite.True(apperrors.IsValidation(err))
			suite.Contains(err.Error(), tc.field)
		})
	}
}

func (suite *GroupServiceTestSuite) TestUpdateTypeRecomputesLimit() {
	userID := uuid.New()
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Type: models.GroupTypeField, MaxMembers: 40}
	newType := models.GroupTypeFutsal

	suite.groupRepo.EXPECT().GetByID(suite.ctx, group.ID).Return(group, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, userID, group.ID).Return(nil)
	suite.groupRepo.EXPECT().Update(suite.ctx, group).Return(nil)
	suite.memberRepo.EXPECT().CountActive(suite.ctx, group.ID).Return(int64(12), nil)

	resp, err := suite.service.Update(suite.ctx, userID, group.ID, &service.UpdateGroupRequest{Type: &newType})

	suite.Require().NoError(err)
	suite.Equal(20, resp.MaxMembers)
	suite.Equal(int64(12), resp.TotalMembers)
}

func (suite *GroupServiceTestSuite) TestUpdateRequiresAdmin() {
	userID := uuid.New()
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.groupRepo.EXPECT().GetByID(suite.ctx, group.ID).Return(group, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, userID, group.ID).Return(apperrors.ErrNotGroupAdmin)

	_, err := suite.service.Update(suite.ctx, userID, group.ID, &service.UpdateGroupRequest{Name: strPtr("Novo nome")})

	suite.ErrorIs(err, apperrors.ErrNotGroupAdmin)
}

func (suite *GroupServiceTestSuite) TestGetUnknownGroup() {
	suite.groupRepo.EXPECT().GetByID(suite.ctx, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Get(suite.ctx, uuid.New(), uuid.New())

	suite.ErrorIs(err, apperrors.ErrGroupNotFound)
}

func (suite *GroupServiceTestSuite) TestListAddsMemberCounts() {
	userID := uuid.New()
	groups := []models.Group{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "A"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "B"},
	}

	suite.groupRepo.EXPECT().ListForUser(suite.ctx, userID, true, 20, 0).Return(groups, int64(2), nil)
	suite.memberRepo.EXPECT().
		CountActiveByGroups(suite.ctx, []uuid.UUID{groups[0].ID, groups[1].ID}).
		Return(map[uuid.UUID]int64{groups[0].ID: 7}, nil)

	resp, err := suite.service.List(suite.ctx, userID, true, 0, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(2), resp.Total)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Equal(int64(7), resp.Groups[0].TotalMembers)
	suite.Equal(int64(0), resp.Groups[1].TotalMembers)
}

func (suite *GroupServiceTestSuite) TestBalance() {
	userID := uuid.New()
	groupID := uuid.New()

	suite.groupRepo.EXPECT().GetByID(suite.ctx, groupID).Return(&models.Group{}, nil)
	suite.access.EXPECT().RequireMembership(suite.ctx, userID, groupID).Return(nil)
	suite.paymentRepo.EXPECT().
		SumByGroup(suite.ctx, groupID, []models.PaymentStatus{models.PaymentStatusApproved}).
		Return(int64(15050), nil)
	suite.paymentRepo.EXPECT().
		SumByGroup(suite.ctx, groupID, []models.PaymentStatus{models.PaymentStatusPending, models.PaymentStatusAwaitingApproval}).
		Return(int64(3000), nil)

	resp, err := suite.service.Balance(suite.ctx, userID, groupID)

	suite.Require().NoError(err)
	suite.Equal("R$ 150.50", resp.ReceivedFormatted)
	suite.Equal("R$ 30.00", resp.OutstandingFormatted)
}

func (suite *GroupServiceTestSuite) TestDeactivate() {
	userID := uuid.New()
	group := &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, IsActive: true}

	suite.groupRepo.EXPECT().GetByID(suite.ctx, group.ID).Return(group, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, userID, group.ID).Return(nil)
	suite.groupRepo.EXPECT().Update(suite.ctx, group).Return(nil)

	suite.NoError(suite.service.Deactivate(suite.ctx, userID, group.ID))
	suite.False(group.IsActive)
}

func TestGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}
