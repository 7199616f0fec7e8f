package api

import (
	"net/http"
	"strconv"

	resdto "ticketline/internal/handler/dto/response"
	"ticketline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OpsHandler struct {
	opsQueries queries.OpsQueries
}

func NewOpsHandler(opsQueries queries.OpsQueries) *OpsHandler {
	return &OpsHandler{
		opsQueries: opsQueries,
	}
}

// @Summary List pending email retries
// @Description Inspect the dead-letter queue of failed confirmation sends
// @Tags ops
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} resdto.EmailRetryResponse
// @Router /ops/email-retries [get]
func (h *OpsHandler) ListEmailRetries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	views, err := h.opsQueries.ListEmailRetries(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.EmailRetryResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromEmailRetryView(rm)
	}

	c.JSON(http.StatusOK, response)
}
