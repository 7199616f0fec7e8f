package api

import (
	"net/http"

	reqdto "ticketline/internal/handler/dto/request"
	resdto "ticketline/internal/handler/dto/response"
	"ticketline/internal/infra"
	"ticketline/internal/pkg/errs"
	"ticketline/internal/usecase/commands"
	"ticketline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Reserve tickets
// @Description Hold inventory for a checkout session; all items or none
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} resdto.ReservationFailedResponse
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reservationCommands.ReserveTickets(c.Request.Context(), req.GetSessionID(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmptyReservation), errs.Is(err, commands.ErrInvalidReservationItem):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation items",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if !result.Success() {
		c.JSON(http.StatusConflict, resdto.FromItemFailures(result.Failures))
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReservationView(result.Reservation, result.Replayed))
}

// @Summary Get reservation
// @Description Get reservation state by checkout session ID
// @Tags reservations
// @Produce json
// @Param sessionID path string true "Checkout session ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{sessionID} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	sessionID := c.Param("sessionID")

	view, err := h.reservationQueries.GetBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view, false))
}
