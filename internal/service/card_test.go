package service_test

import (
	"context"
	"testing"
	"time"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/mocks"
	"quemjoga-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CardServiceTestSuite defines the test suite for CardService
type CardServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	tx          *mocks.MockTransactorInterface
	cardRepo    *mocks.MockCardRepositoryInterface
	memberRepo  *mocks.MockMemberRepositoryInterface
	matchRepo   *mocks.MockMatchRepositoryInterface
	groupRepo   *mocks.MockGroupRepositoryInterface
	paymentRepo *mocks.MockPaymentRepositoryInterface
	access      *mocks.MockAccessControlInterface
	service     *service.CardService
	ctx         context.Context
	adminID     uuid.UUID
	group       *models.Group
	member      *models.Member
	match       *models.Match
}

func (suite *CardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tx = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.cardRepo = mocks.NewMockCardRepositoryInterface(suite.ctrl)
	suite.memberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.matchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.groupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.paymentRepo = mocks.NewMockPaymentRepositoryInterface(suite.ctrl)
	suite.access = mocks.NewMockAccessControlInterface(suite.ctrl)
	suite.service = service.NewCardService(
		suite.tx, suite.cardRepo, suite.memberRepo, suite.matchRepo,
		suite.groupRepo, suite.paymentRepo, suite.access, service.NewValidator(),
	)
	suite.ctx = context.Background()
	suite.adminID = uuid.New()
	suite.group = &models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, YellowCardFine: 1000, RedCardFine: 2000}
	suite.member = &models.Member{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: suite.group.ID}
	suite.match = &models.Match{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		GroupID:     suite.group.ID,
		ScheduledAt: time.Date(2026, 10, 8, 20, 0, 0, 0, time.UTC),
	}
}

func (suite *CardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestIssueAndRemoveRoundTrip issues a yellow card with its fine, then removes both
func (suite *CardServiceTestSuite) TestIssueAndRemoveRoundTrip() {
	cardID := uuid.New()
	fineID := uuid.New()

	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil).Times(2)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.group.ID).Return(nil).Times(2)
	expectTx(suite.tx).Times(2)
	suite.matchRepo.EXPECT().GetLatestByGroup(suite.ctx, suite.group.ID).Return(suite.match, nil)
	suite.groupRepo.EXPECT().GetByID(suite.ctx, suite.group.ID).Return(suite.group, nil)
	suite.cardRepo.EXPECT().Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Card) error {
			c.ID = cardID
			suite.Equal(suite.match.ID, c.MatchID)
			suite.True(c.FineGenerated)
			return nil
		})
	suite.paymentRepo.EXPECT().Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) error {
			p.ID = fineID
			suite.Equal(models.PaymentTypeYellowFine, p.Type)
			suite.Equal(int64(1000), p.Amount)
			suite.Equal(models.PaymentStatusPending, p.Status)
			suite.Equal("Multa cartão amarelo - jogo 08/10/2026", p.Description)
			return nil
		})

	issued, err := suite.service.Issue(suite.ctx, suite.adminID, &service.IssueCardRequest{
		MemberID: suite.member.ID,
		Type:     models.CardTypeYellow,
	})
	suite.Require().NoError(err)
	suite.Equal(cardID, issued.ID)
	suite.Require().NotNil(issued.FinePaymentID)
	suite.Equal(fineID, *issued.FinePaymentID)

	suite.cardRepo.EXPECT().
		GetLatestByType(suite.ctx, suite.member.ID, models.CardTypeYellow).
		Return(&models.Card{BaseModel: models.BaseModel{ID: cardID}}, nil)
	suite.cardRepo.EXPECT().Delete(suite.ctx, cardID).Return(nil)
	suite.paymentRepo.EXPECT().
		GetLatestPendingByType(suite.ctx, suite.member.ID, models.PaymentTypeYellowFine).
		Return(&models.Payment{BaseModel: models.BaseModel{ID: fineID}}, nil)
	suite.paymentRepo.EXPECT().Delete(suite.ctx, fineID).Return(nil)

	removed, err := suite.service.RemoveLatest(suite.ctx, suite.adminID, suite.member.ID, models.CardTypeYellow)

	suite.Require().NoError(err)
	suite.Equal(cardID, removed.CardID)
	suite.Equal(fineID, *removed.FinePaymentID)
}

func (suite *CardServiceTestSuite) TestIssueWithoutFine() {
	suite.group.RedCardFine = 0

	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.group.ID).Return(nil)
	expectTx(suite.tx)
	suite.matchRepo.EXPECT().GetByID(suite.ctx, suite.match.ID).Return(suite.match, nil)
	suite.groupRepo.EXPECT().GetByID(suite.ctx, suite.group.ID).Return(suite.group, nil)
	suite.cardRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	resp, err := suite.service.Issue(suite.ctx, suite.adminID, &service.IssueCardRequest{
		MemberID: suite.member.ID,
		MatchID:  &suite.match.ID,
		Type:     models.CardTypeRed,
	})

	suite.Require().NoError(err)
	suite.False(resp.FineGenerated)
	suite.Nil(resp.FinePaymentID)
}

func (suite *CardServiceTestSuite) TestIssueRejectsMatchFromAnotherGroup() {
	foreign := &models.Match{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: uuid.New()}

	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.group.ID).Return(nil)
	expectTx(suite.tx)
	suite.matchRepo.EXPECT().GetByID(suite.ctx, foreign.ID).Return(foreign, nil)

	_, err := suite.service.Issue(suite.ctx, suite.adminID, &service.IssueCardRequest{
		MemberID: suite.member.ID,
		MatchID:  &foreign.ID,
		Type:     models.CardTypeYellow,
	})

	suite.ErrorIs(err, apperrors.ErrMatchNotInGroup)
}

func (suite *CardServiceTestSuite) TestIssueWithoutAnyMatch() {
	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.group.ID).Return(nil)
	expectTx(suite.tx)
	suite.matchRepo.EXPECT().GetLatestByGroup(suite.ctx, suite.group.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Issue(suite.ctx, suite.adminID, &service.IssueCardRequest{
		MemberID: suite.member.ID,
		Type:     models.CardTypeYellow,
	})

	suite.ErrorIs(err, apperrors.ErrNoMatchForCard)
}

func (suite *CardServiceTestSuite) TestRemoveKeepsSettledFine() {
	cardID := uuid.New()

	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.group.ID).Return(nil)
	expectTx(suite.tx)
	suite.cardRepo.EXPECT().
		GetLatestByType(suite.ctx, suite.member.ID, models.CardTypeRed).
		Return(&models.Card{BaseModel: models.BaseModel{ID: cardID}}, nil)
	suite.cardRepo.EXPECT().Delete(suite.ctx, cardID).Return(nil)
	suite.paymentRepo.EXPECT().
		GetLatestPendingByType(suite.ctx, suite.member.ID, models.PaymentTypeRedFine).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.RemoveLatest(suite.ctx, suite.adminID, suite.member.ID, models.CardTypeRed)

	suite.Require().NoError(err)
	suite.Nil(resp.FinePaymentID)
}

func (suite *CardServiceTestSuite) TestRemoveWithoutCards() {
	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.adminID, suite.group.ID).Return(nil)
	expectTx(suite.tx)
	suite.cardRepo.EXPECT().GetLatestByType(suite.ctx, suite.member.ID, models.CardTypeYellow).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.RemoveLatest(suite.ctx, suite.adminID, suite.member.ID, models.CardTypeYellow)

	suite.ErrorIs(err, apperrors.ErrCardNotFound)
}

func (suite *CardServiceTestSuite) TestRemoveUnknownType() {
	_, err := suite.service.RemoveLatest(suite.ctx, suite.adminID, suite.member.ID, models.CardType("blue"))

	suite.True(apperrors.IsValidation(err))
}

func TestCardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CardServiceTestSuite))
}
