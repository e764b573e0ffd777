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
	"quemjoga-backend/internal/storage"
	"quemjoga-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PaymentHandlerTestSuite tests the PaymentHandler
type PaymentHandlerTestSuite struct {
	suite.Suite
	http         *testutils.HTTPTestSuite
	ctrl         *gomock.Controller
	mockService  *mocks.MockPaymentServiceInterface
	mockReceipts *mocks.MockPhotoStorageInterface
	user         *models.User
}

// SetupTest sets up each individual test
func (suite *PaymentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPaymentServiceInterface(suite.ctrl)
	suite.mockReceipts = mocks.NewMockPhotoStorageInterface(suite.ctrl)
	suite.user = testUser()

	handler := NewPaymentHandler(suite.mockService, suite.mockReceipts)
	h, v1 := newHTTPTest(suite.user)
	suite.http = h
	v1.GET("/groups/:id/payments", handler.ListPayments)
	v1.GET("/groups/:id/payments/awaiting", handler.ListAwaiting)
	v1.POST("/groups/:id/dues", handler.GenerateDues)
	v1.POST("/members/:id/dues/confirm", handler.ConfirmDues)
	v1.POST("/members/:id/dues/unconfirm", handler.UnconfirmDues)
	payments := v1.Group("/payments")
	{
		payments.POST("", handler.CreatePayment)
		payments.POST("/:id/receipt", handler.SubmitReceipt)
		payments.POST("/:id/review", handler.ReviewPayment)
	}
}

// TearDownTest cleans up after each test
func (suite *PaymentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePayment tests recording a charge
func (suite *PaymentHandlerTestSuite) TestCreatePayment() {
	memberID := uuid.New()
	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.user.ID, &service.CreatePaymentRequest{MemberID: memberID, Type: models.PaymentTypeUniform, Amount: 8000}).
		Return(&service.PaymentResponse{ID: uuid.New(), MemberID: memberID, Amount: 8000, AmountFormatted: "R$ 80.00"}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"member_id": memberID,
		"type":      "uniform",
		"amount":    8000,
	})

	var response service.PaymentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("R$ 80.00", response.AmountFormatted)
}

// TestListPaymentsFilters tests query filters reaching the service
func (suite *PaymentHandlerTestSuite) TestListPaymentsFilters() {
	groupID := uuid.New()
	memberID := uuid.New()
	status := models.PaymentStatusPending
	paymentType := models.PaymentTypeDues
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.user.ID, groupID, service.PaymentListFilter{MemberID: &memberID, Status: &status, Type: &paymentType}, 1, 20).
		Return(&service.PaymentListResponse{}, nil)

	url := "/api/v1/groups/" + groupID.String() + "/payments?member_id=" + memberID.String() + "&status=pending&type=dues"
	recorder := suite.http.MakeRequest(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestListPaymentsInvalidFilters tests that malformed filters never reach the service
func (suite *PaymentHandlerTestSuite) TestListPaymentsInvalidFilters() {
	base := "/api/v1/groups/" + uuid.NewString() + "/payments?"
	cases := map[string]string{
		"member_id=abc": "invalid member ID",
		"status=paid":   "invalid payment status",
		"type=beer":     "invalid payment type",
	}
	for query, message := range cases {
		recorder := suite.http.MakeRequest(http.MethodGet, base+query, nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, message)
	}
}

// TestSubmitReceiptJSON tests submitting a receipt link
func (suite *PaymentHandlerTestSuite) TestSubmitReceiptJSON() {
	paymentID := uuid.New()
	suite.mockService.EXPECT().
		SubmitReceipt(gomock.Any(), suite.user.ID, paymentID, &service.SubmitReceiptRequest{ReceiptURL: "https://bank.test/r/1"}).
		Return(&service.PaymentResponse{ID: paymentID, Status: models.PaymentStatusAwaitingApproval}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/receipt", service.SubmitReceiptRequest{ReceiptURL: "https://bank.test/r/1"})

	var response service.PaymentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.PaymentStatusAwaitingApproval, response.Status)
}

// TestSubmitReceiptUpload tests storing an uploaded receipt before submitting it
func (suite *PaymentHandlerTestSuite) TestSubmitReceiptUpload() {
	paymentID := uuid.New()
	gomock.InOrder(
		suite.mockReceipts.EXPECT().
			Save(gomock.Any(), "receipts", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, upload storage.Upload) (string, error) {
				suite.Equal("pix.pdf", upload.Filename)
				return "/uploads/receipts/abc.pdf", nil
			}),
		suite.mockService.EXPECT().
			SubmitReceipt(gomock.Any(), suite.user.ID, paymentID, &service.SubmitReceiptRequest{ReceiptURL: "/uploads/receipts/abc.pdf"}).
			Return(&service.PaymentResponse{ID: paymentID, ReceiptURL: "/uploads/receipts/abc.pdf"}, nil),
	)

	req := multipartRequest(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/receipt", "file", "pix.pdf", []byte("%PDF-1.4"))
	recorder := suite.http.Serve(req)

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestSubmitReceiptUploadRollsBackFile tests that a rejected submission removes the stored file
func (suite *PaymentHandlerTestSuite) TestSubmitReceiptUploadRollsBackFile() {
	paymentID := uuid.New()
	suite.mockReceipts.EXPECT().Save(gomock.Any(), "receipts", gomock.Any()).Return("/uploads/receipts/abc.pdf", nil)
	suite.mockService.EXPECT().
		SubmitReceipt(gomock.Any(), suite.user.ID, paymentID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidPaymentTransition)
	suite.mockReceipts.EXPECT().Delete(gomock.Any(), "/uploads/receipts/abc.pdf").Return(errors.New("gone"))

	req := multipartRequest(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/receipt", "file", "pix.pdf", []byte("%PDF-1.4"))
	recorder := suite.http.Serve(req)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "cannot move")
}

// TestReviewPayment tests an approval
func (suite *PaymentHandlerTestSuite) TestReviewPayment() {
	paymentID := uuid.New()
	approved := true
	suite.mockService.EXPECT().
		Review(gomock.Any(), suite.user.ID, paymentID, &service.ReviewPaymentRequest{Approved: &approved}).
		Return(&service.PaymentResponse{ID: paymentID, Status: models.PaymentStatusApproved}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/review", map[string]bool{"approved": true})

	var response service.PaymentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.PaymentStatusApproved, response.Status)
}

// TestGenerateDues tests creating a period's dues
func (suite *PaymentHandlerTestSuite) TestGenerateDues() {
	groupID := uuid.New()
	suite.mockService.EXPECT().
		GenerateDues(gomock.Any(), suite.user.ID, groupID, &service.GenerateDuesRequest{Reference: "2026-10"}).
		Return(&service.DuesGenerationResponse{}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/dues", service.GenerateDuesRequest{Reference: "2026-10"})

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestConfirmAndUnconfirmDues tests both dues toggles
func (suite *PaymentHandlerTestSuite) TestConfirmAndUnconfirmDues() {
	memberID := uuid.New()
	req := &service.DuesReferenceRequest{Reference: "2026-10"}
	suite.mockService.EXPECT().ConfirmDues(gomock.Any(), suite.user.ID, memberID, req).
		Return(&service.PaymentResponse{Status: models.PaymentStatusApproved}, nil)
	suite.mockService.EXPECT().UnconfirmDues(gomock.Any(), suite.user.ID, memberID, req).
		Return(nil, apperrors.ErrPaymentNotFound)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/members/"+memberID.String()+"/dues/confirm", req)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.http.MakeRequest(http.MethodPost, "/api/v1/members/"+memberID.String()+"/dues/unconfirm", req)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestPaymentHandlerTestSuite runs the test suite
func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
