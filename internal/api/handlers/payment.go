package handlers

import (
	"context"
	"net/http"
	"strings"

	"quemjoga-backend/internal/database/models"
	"quemjoga-backend/internal/logger"
	"quemjoga-backend/internal/service"
	"quemjoga-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles HTTP requests for the group ledger
type PaymentHandler struct {
	paymentService service.PaymentServiceInterface
	receipts       service.PhotoStorageInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentServiceInterface, receipts service.PhotoStorageInterface) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		receipts:       receipts,
	}
}

// CreatePayment handles POST /payments
// @Summary Create a payment
// @Description Create a pending ledger entry for a member
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body service.CreatePaymentRequest true "Payment data"
// @Success 201 {object} service.PaymentResponse "Payment created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ListPayments handles GET /groups/:id/payments
// @Summary List the payments of a group
// @Description Newest first, filtered by member, status and type
// @Tags payments
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param member_id query string false "Member ID (UUID)"
// @Param status query string false "Payment status"
// @Param type query string false "Payment type"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PaymentListResponse "Payments"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 403 {object} ErrorResponse "Not a member of the group"
// @Security BearerAuth
// @Router /groups/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}

	var filter service.PaymentListFilter
	if filter.MemberID, ok = queryUUID(c, "member_id", "member"); !ok {
		return
	}
	if raw := c.Query("status"); raw != "" {
		status := models.PaymentStatus(raw)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment status"})
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("type"); raw != "" {
		paymentType := models.PaymentType(raw)
		if !paymentType.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment type"})
			return
		}
		filter.Type = &paymentType
	}
	page, pageSize := pageParams(c)

	payments, err := h.paymentService.List(c.Request.Context(), userID, groupID, filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// ListAwaiting handles GET /groups/:id/payments/awaiting
// @Summary Payments awaiting approval
// @Tags payments
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {array} service.PaymentResponse "Payments with a submitted receipt"
// @Failure 403 {object} ErrorResponse "Only admins can review payments"
// @Security BearerAuth
// @Router /groups/{id}/payments/awaiting [get]
func (h *PaymentHandler) ListAwaiting(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListAwaiting(c.Request.Context(), userID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// SubmitReceipt handles POST /payments/:id/receipt
// @Summary Submit a payment receipt
// @Description Attach a receipt as a JSON receipt_url or a multipart file. The payment moves to awaiting approval.
// @Tags payments
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Param receipt body service.SubmitReceiptRequest false "Receipt URL"
// @Param file formData file false "Receipt image"
// @Success 200 {object} service.PaymentResponse "Receipt submitted"
// @Failure 400 {object} ErrorResponse "Invalid receipt or payment status"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /payments/{id}/receipt [post]
func (h *PaymentHandler) SubmitReceipt(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	paymentID, ok := paramUUID(c, "id", "payment")
	if !ok {
		return
	}

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		var req service.SubmitReceiptRequest
		if !bindJSON(c, &req) {
			return
		}
		payment, err := h.paymentService.SubmitReceipt(c.Request.Context(), userID, paymentID, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, payment)
		return
	}

	upload, closeFile, ok := formUpload(c, "file")
	if !ok {
		return
	}
	defer closeFile()

	ctx := c.Request.Context()
	receiptURL, err := h.receipts.Save(ctx, storage.ReceiptsDir, upload)
	if err != nil {
		respondError(c, err)
		return
	}
	payment, err := h.paymentService.SubmitReceipt(ctx, userID, paymentID, &service.SubmitReceiptRequest{ReceiptURL: receiptURL})
	if err != nil {
		if delErr := h.receipts.Delete(ctx, receiptURL); delErr != nil {
			logger.WithContext(ctx).WithError(delErr).Warn("Failed to remove orphaned receipt")
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// ReviewPayment handles POST /payments/:id/review
// @Summary Approve or reject a receipt
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Param review body service.ReviewPaymentRequest true "Decision"
// @Success 200 {object} service.PaymentResponse "Payment reviewed"
// @Failure 400 {object} ErrorResponse "Payment is not awaiting approval"
// @Failure 403 {object} ErrorResponse "Only admins can review payments"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /payments/{id}/review [post]
func (h *PaymentHandler) ReviewPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	paymentID, ok := paramUUID(c, "id", "payment")
	if !ok {
		return
	}
	var req service.ReviewPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Review(c.Request.Context(), userID, paymentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GenerateDues handles POST /groups/:id/dues
// @Summary Generate monthly dues
// @Description Create one dues payment per active member for a reference. Members already billed are skipped.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param dues body service.GenerateDuesRequest true "Reference such as 2026-10"
// @Success 200 {object} service.DuesGenerationResponse "Created and skipped counts"
// @Failure 400 {object} ErrorResponse "Dues amount is not configured"
// @Failure 403 {object} ErrorResponse "Only admins can generate dues"
// @Security BearerAuth
// @Router /groups/{id}/dues [post]
func (h *PaymentHandler) GenerateDues(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	groupID, ok := paramUUID(c, "id", "group")
	if !ok {
		return
	}
	var req service.GenerateDuesRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.paymentService.GenerateDues(c.Request.Context(), userID, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConfirmDues handles POST /members/:id/dues/confirm
// @Summary Mark dues as paid
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param dues body service.DuesReferenceRequest true "Reference"
// @Success 200 {object} service.PaymentResponse "Dues approved"
// @Failure 403 {object} ErrorResponse "Only admins can confirm dues"
// @Security BearerAuth
// @Router /members/{id}/dues/confirm [post]
func (h *PaymentHandler) ConfirmDues(c *gin.Context) {
	h.changeDues(c, h.paymentService.ConfirmDues)
}

// UnconfirmDues handles POST /members/:id/dues/unconfirm
// @Summary Revert dues to pending
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param dues body service.DuesReferenceRequest true "Reference"
// @Success 200 {object} service.PaymentResponse "Dues reverted"
// @Failure 403 {object} ErrorResponse "Only admins can change dues"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /members/{id}/dues/unconfirm [post]
func (h *PaymentHandler) UnconfirmDues(c *gin.Context) {
	h.changeDues(c, h.paymentService.UnconfirmDues)
}

type duesChange func(ctx context.Context, userID, memberID uuid.UUID, req *service.DuesReferenceRequest) (*service.PaymentResponse, error)

func (h *PaymentHandler) changeDues(c *gin.Context, change duesChange) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "id", "member")
	if !ok {
		return
	}
	var req service.DuesReferenceRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := change(c.Request.Context(), userID, memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
