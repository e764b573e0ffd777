package handlers

import (
	"net/http"

	"quemjoga-backend/internal/database/models"
	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CardHandler handles HTTP requests for disciplinary cards
type CardHandler struct {
	cardService service.CardServiceInterface
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService service.CardServiceInterface) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// IssueCard handles POST /cards
// @Summary Issue a card
// @Description Record a card for a member. Without match_id the latest match of the group is used. A configured fine creates a pending payment.
// @Tags cards
// @Accept json
// @Produce json
// @Param card body service.IssueCardRequest true "Card data"
// @Success 201 {object} service.CardResponse "Card issued"
// @Failure 400 {object} ErrorResponse "Invalid request or no match to attach to"
// @Failure 403 {object} ErrorResponse "Only admins can issue cards"
// @Failure 404 {object} ErrorResponse "Member or match not found"
// @Security BearerAuth
// @Router /cards [post]
func (h *CardHandler) IssueCard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.IssueCardRequest
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.cardService.Issue(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

// RemoveLatestCard handles DELETE /members/:id/cards/:type
// @Summary Remove the latest card of a color
// @Description Delete the most recent card of the color and its latest pending fine, if any
// @Tags cards
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param type path string true "Card color" Enums(yellow, red)
// @Success 200 {object} service.CardRemovalResponse "Card removed"
// @Failure 400 {object} ErrorResponse "Unknown card type"
// @Failure 403 {object} ErrorResponse "Only admins can remove cards"
// @Failure 404 {object} ErrorResponse "Member has no card of this color"
// @Security BearerAuth
// @Router /members/{id}/cards/{type} [delete]
func (h *CardHandler) RemoveLatestCard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "id", "member")
	if !ok {
		return
	}

	removal, err := h.cardService.RemoveLatest(c.Request.Context(), userID, memberID, models.CardType(c.Param("type")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, removal)
}

// ListMemberCards handles GET /members/:id/cards
// @Summary List the cards of a member
// @Tags cards
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {array} service.CardResponse "Cards, newest first"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id}/cards [get]
func (h *CardHandler) ListMemberCards(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	memberID, ok := paramUUID(c, "id", "member")
	if !ok {
		return
	}

	cards, err := h.cardService.ListByMember(c.Request.Context(), userID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}
