package api

import (
	"net/http"

	resdto "ticketline/internal/handler/dto/response"
	"ticketline/internal/infra"
	"ticketline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderQueries queries.OrderQueries
}

func NewOrderHandler(orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderQueries: orderQueries,
	}
}

// @Summary Get order
// @Description Get the materialized order and tickets for a checkout session
// @Tags orders
// @Produce json
// @Param sessionID path string true "Checkout session ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{sessionID} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	sessionID := c.Param("sessionID")

	view, err := h.orderQueries.GetBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
