package service_test

import (
	"context"
	"testing"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/mocks"
	"quemjoga-backend/internal/notify"
	"quemjoga-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PaymentServiceTestSuite defines the test suite for PaymentService
type PaymentServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	tx            *mocks.MockTransactorInterface
	paymentRepo   *mocks.MockPaymentRepositoryInterface
	memberRepo    *mocks.MockMemberRepositoryInterface
	groupRepo     *mocks.MockGroupRepositoryInterface
	pushTokenRepo *mocks.MockPushTokenRepositoryInterface
	notifier      *mocks.MockNotifierInterface
	access        *mocks.MockAccessControlInterface
	service       *service.PaymentService
	ctx           context.Context
	userID        uuid.UUID
	payerID       uuid.UUID
	member        *models.Member
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tx = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.paymentRepo = mocks.NewMockPaymentRepositoryInterface(suite.ctrl)
	suite.memberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.groupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.pushTokenRepo = mocks.NewMockPushTokenRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockNotifierInterface(suite.ctrl)
	suite.access = mocks.NewMockAccessControlInterface(suite.ctrl)
	suite.service = service.NewPaymentService(
		suite.tx, suite.paymentRepo, suite.memberRepo, suite.groupRepo,
		suite.pushTokenRepo, suite.notifier, suite.access, service.NewValidator(),
	)
	suite.ctx = context.Background()
	suite.userID = uuid.New()
	suite.payerID = uuid.New()
	suite.member = &models.Member{
		BaseModel: models.BaseModel{ID: uuid.New()},
		GroupID:   uuid.New(),
		UserID:    &suite.payerID,
		Name:      "Pedro",
		IsActive:  true,
	}
}

func (suite *PaymentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PaymentServiceTestSuite) TestCreateStartsPending() {
	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil)
	suite.access.EXPECT().RequireMembership(suite.ctx, suite.userID, suite.member.GroupID).Return(nil)
	suite.paymentRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, suite.userID, &service.CreatePaymentRequest{
		MemberID: suite.member.ID,
		Type:     models.PaymentTypeUniform,
		Amount:   8990,
	})

	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusPending, resp.Status)
	suite.Equal("R$ 89.90", resp.AmountFormatted)
	suite.Equal("Pedro", resp.MemberName)
}

func (suite *PaymentServiceTestSuite) TestCreateRejectsNonPositiveAmount() {
	_, err := suite.service.Create(suite.ctx, suite.userID, &service.CreatePaymentRequest{
		MemberID: suite.member.ID,
		Type:     models.PaymentTypeOther,
		Amount:   0,
	})

	suite.True(apperrors.IsValidation(err))
}

// TestRejectedPaymentCanBeResubmittedAndApproved walks rejected -> awaiting -> approved
func (suite *PaymentServiceTestSuite) TestRejectedPaymentCanBeResubmittedAndApproved() {
	payment := &models.Payment{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		MemberID:        suite.member.ID,
		Type:            models.PaymentTypeDues,
		Amount:          5000,
		Status:          models.PaymentStatusRejected,
		RejectionReason: "comprovante ilegivel",
	}

	suite.paymentRepo.EXPECT().GetByID(suite.ctx, payment.ID).Return(payment, nil).Times(2)
	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil)
	suite.access.EXPECT().RequireMembership(suite.ctx, suite.payerID, suite.member.GroupID).Return(nil)
	suite.paymentRepo.EXPECT().Update(suite.ctx, payment).Return(nil).Times(2)

	resp, err := suite.service.SubmitReceipt(suite.ctx, suite.payerID, payment.ID, &service.SubmitReceiptRequest{
		ReceiptURL: "/uploads/receipts/r.png",
	})
	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusAwaitingApproval, resp.Status)

	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.userID, suite.member.GroupID).Return(nil)
	suite.pushTokenRepo.EXPECT().
		ListByUserIDs(suite.ctx, []uuid.UUID{suite.payerID}).
		Return([]models.PushToken{{Token: "device-1"}}, nil)
	suite.notifier.EXPECT().Notify(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n notify.Notification) error {
			suite.Equal("Pagamento aprovado", n.Title)
			suite.Equal([]string{"device-1"}, n.Tokens)
			return nil
		})

	resp, err = suite.service.Review(suite.ctx, suite.userID, payment.ID, &service.ReviewPaymentRequest{Approved: boolPtr(true)})

	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusApproved, resp.Status)
	suite.Equal(suite.userID, *resp.ApprovedBy)
	suite.NotNil(resp.ApprovedAt)
}

func (suite *PaymentServiceTestSuite) TestReceiptOnApprovedPaymentIsRefused() {
	payment := &models.Payment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MemberID:  suite.member.ID,
		Status:    models.PaymentStatusApproved,
		Member:    suite.member,
	}

	suite.paymentRepo.EXPECT().GetByID(suite.ctx, payment.ID).Return(payment, nil)
	suite.access.EXPECT().RequireMembership(suite.ctx, suite.payerID, suite.member.GroupID).Return(nil)

	_, err := suite.service.SubmitReceipt(suite.ctx, suite.payerID, payment.ID, &service.SubmitReceiptRequest{ReceiptURL: "x"})

	suite.ErrorIs(err, apperrors.ErrInvalidPaymentTransition)
}

func (suite *PaymentServiceTestSuite) TestReviewRequiresAwaitingStatus() {
	payment := &models.Payment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MemberID:  suite.member.ID,
		Status:    models.PaymentStatusPending,
		Member:    suite.member,
	}

	suite.paymentRepo.EXPECT().GetByID(suite.ctx, payment.ID).Return(payment, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.userID, suite.member.GroupID).Return(nil)

	_, err := suite.service.Review(suite.ctx, suite.userID, payment.ID, &service.ReviewPaymentRequest{Approved: boolPtr(true)})

	suite.ErrorIs(err, apperrors.ErrInvalidPaymentTransition)
}

func (suite *PaymentServiceTestSuite) TestRejectKeepsReason() {
	payment := &models.Payment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MemberID:  suite.member.ID,
		Status:    models.PaymentStatusAwaitingApproval,
		Member:    suite.member,
	}

	suite.paymentRepo.EXPECT().GetByID(suite.ctx, payment.ID).Return(payment, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.userID, suite.member.GroupID).Return(nil)
	suite.paymentRepo.EXPECT().Update(suite.ctx, payment).Return(nil)
	suite.pushTokenRepo.EXPECT().ListByUserIDs(suite.ctx, gomock.Any()).Return(nil, nil)
	suite.notifier.EXPECT().Notify(suite.ctx, gomock.Any()).Return(nil)

	resp, err := suite.service.Review(suite.ctx, suite.userID, payment.ID, &service.ReviewPaymentRequest{
		Approved:        boolPtr(false),
		RejectionReason: "valor errado",
	})

	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusRejected, resp.Status)
	suite.Equal("valor errado", resp.RejectionReason)
	suite.Nil(resp.ApprovedBy)
}

// TestGenerateDuesIsIdempotent ensures members already charged for the period are skipped
func (suite *PaymentServiceTestSuite) TestGenerateDuesIsIdempotent() {
	groupID := suite.member.GroupID
	group := &models.Group{BaseModel: models.BaseModel{ID: groupID}, DuesAmount: 5000}
	members := []models.Member{
		{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: groupID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: groupID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, GroupID: groupID},
	}

	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.userID, groupID).Return(nil).Times(2)
	expectTx(suite.tx).Times(2)
	suite.groupRepo.EXPECT().GetByID(suite.ctx, groupID).Return(group, nil).Times(2)
	suite.memberRepo.EXPECT().ListActiveByGroup(suite.ctx, groupID).Return(members, nil).Times(2)

	suite.paymentRepo.EXPECT().MemberIDsWithDues(suite.ctx, groupID, "2026-10").Return([]uuid.UUID{members[0].ID}, nil)
	suite.paymentRepo.EXPECT().Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) error {
			suite.Equal(models.PaymentTypeDues, p.Type)
			suite.Equal(int64(5000), p.Amount)
			suite.Equal("2026-10", p.Reference)
			suite.Equal(models.PaymentStatusPending, p.Status)
			return nil
		}).
		Times(2)

	first, err := suite.service.GenerateDues(suite.ctx, suite.userID, groupID, &service.GenerateDuesRequest{Reference: "2026-10"})
	suite.Require().NoError(err)
	suite.Equal(2, first.Created)
	suite.Equal(1, first.Skipped)

	suite.paymentRepo.EXPECT().
		MemberIDsWithDues(suite.ctx, groupID, "2026-10").
		Return([]uuid.UUID{members[0].ID, members[1].ID, members[2].ID}, nil)

	second, err := suite.service.GenerateDues(suite.ctx, suite.userID, groupID, &service.GenerateDuesRequest{Reference: "2026-10"})
	suite.Require().NoError(err)
	suite.Equal(0, second.Created)
	suite.Equal(3, second.Skipped)
	suite.Equal(3, second.TotalMembers)
}

func (suite *PaymentServiceTestSuite) TestGenerateDuesWithoutAmount() {
	groupID := suite.member.GroupID

	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.userID, groupID).Return(nil)
	expectTx(suite.tx)
	suite.groupRepo.EXPECT().GetByID(suite.ctx, groupID).Return(&models.Group{DuesAmount: 0}, nil)

	_, err := suite.service.GenerateDues(suite.ctx, suite.userID, groupID, &service.GenerateDuesRequest{Reference: "2026-10"})

	suite.ErrorIs(err, apperrors.ErrDuesNotConfigured)
}

func (suite *PaymentServiceTestSuite) TestConfirmDuesCreatesMissingPayment() {
	group := &models.Group{BaseModel: models.BaseModel{ID: suite.member.GroupID}, DuesAmount: 4000}

	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.userID, suite.member.GroupID).Return(nil)
	expectTx(suite.tx)
	suite.paymentRepo.EXPECT().FindDues(suite.ctx, suite.member.ID, "2026-09").Return(nil, gorm.ErrRecordNotFound)
	suite.groupRepo.EXPECT().GetByID(suite.ctx, suite.member.GroupID).Return(group, nil)
	suite.paymentRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)
	suite.paymentRepo.EXPECT().Update(suite.ctx, gomock.Any()).Return(nil)

	resp, err := suite.service.ConfirmDues(suite.ctx, suite.userID, suite.member.ID, &service.DuesReferenceRequest{Reference: "2026-09"})

	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusApproved, resp.Status)
	suite.Equal(int64(4000), resp.Amount)
	suite.Equal("Mensalidade 2026-09", resp.Description)
}

func (suite *PaymentServiceTestSuite) TestUnconfirmDuesClearsApproval() {
	approver := uuid.New()
	payment := &models.Payment{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		MemberID:   suite.member.ID,
		Status:     models.PaymentStatusApproved,
		ApprovedBy: &approver,
	}

	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.userID, suite.member.GroupID).Return(nil)
	suite.paymentRepo.EXPECT().FindDues(suite.ctx, suite.member.ID, "2026-09").Return(payment, nil)
	suite.paymentRepo.EXPECT().Update(suite.ctx, payment).Return(nil)

	resp, err := suite.service.UnconfirmDues(suite.ctx, suite.userID, suite.member.ID, &service.DuesReferenceRequest{Reference: "2026-09"})

	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusPending, resp.Status)
	suite.Nil(resp.ApprovedBy)
	suite.Nil(resp.ApprovedAt)
}

func (suite *PaymentServiceTestSuite) TestUnconfirmMissingDues() {
	suite.memberRepo.EXPECT().GetByID(suite.ctx, suite.member.ID).Return(suite.member, nil)
	suite.access.EXPECT().RequireAdmin(suite.ctx, suite.userID, suite.member.GroupID).Return(nil)
	suite.paymentRepo.EXPECT().FindDues(suite.ctx, suite.member.ID, "2026-09").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.UnconfirmDues(suite.ctx, suite.userID, suite.member.ID, &service.DuesReferenceRequest{Reference: "2026-09"})

	suite.ErrorIs(err, apperrors.ErrPaymentNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
