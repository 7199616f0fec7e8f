package api

import (
	"net/http"

	reqdto "ticketline/internal/handler/dto/request"
	resdto "ticketline/internal/handler/dto/response"
	"ticketline/internal/pkg/errs"
	"ticketline/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewWebhookHandler(checkoutCommands commands.CheckoutCommands) *WebhookHandler {
	return &WebhookHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Payment confirmation webhook
// @Description Materialize tickets for a confirmed payment; redeliveries return the stored order
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Confirmed payment event"
// @Success 200 {object} resdto.CheckoutResponse
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) ConfirmPayment(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkoutCommands.CreateOrRetrieveTickets(c.Request.Context(), req.ToEvent())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment event",
			})
		case errs.Is(err, commands.ErrUnknownTicketType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unknown ticket type in payment event",
			})
		case errs.Is(err, commands.ErrInactiveTicketType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Ticket type is not on sale",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.CheckoutResponse{
		Order:       resdto.FromOrderView(result.Order),
		Created:     result.Created,
		TicketCount: result.TicketCount,
	})
}
