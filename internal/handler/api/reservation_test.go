//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ticketline/internal/handler/api"
	resdto "ticketline/internal/handler/dto/response"
	"ticketline/internal/infra"
	"ticketline/internal/pkg/errs"
	"ticketline/internal/usecase/commands"
	"ticketline/tests/common/builder"
	"ticketline/tests/common/httptest"
	"ticketline/tests/common/testutil"
	commandsmock "ticketline/tests/mock/commands"
	queriesmock "ticketline/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations/:sessionID", s.handler.GetReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()

	validation := []testCaseReservation{
		{name: "missing field: session_id (required)", mutate: testutil.Field("session_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: items (required)", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
		{name: "empty items", mutate: testutil.Field("items", []map[string]any{}), expectCode: http.StatusBadRequest},
		{name: "zero quantity item", mutate: testutil.Field("items", []map[string]any{
			{"ticket_type_id": b.TicketTypeID.String(), "quantity": 0},
		}), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created when every item is held", func() {
		s.mockCommands.EXPECT().ReserveTickets(gomock.Any(), b.SessionID, gomock.Any()).
			Return(b.BuildReserveResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.ReservationResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(b.SessionID, resp.SessionID)
		s.Equal("pending", resp.Status)
		s.False(resp.Replayed)
	})

	s.Run("success: returns 200 OK for a replayed session", func() {
		result := b.BuildReserveResult()
		result.Replayed = true
		s.mockCommands.EXPECT().ReserveTickets(gomock.Any(), b.SessionID, gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ReservationResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.True(resp.Replayed)
	})

	s.Run("conflict: returns 409 with per-item failures", func() {
		s.mockCommands.EXPECT().ReserveTickets(gomock.Any(), b.SessionID, gomock.Any()).
			Return(b.BuildInsufficientResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusConflict, rec.Code)

		var resp resdto.ReservationFailedResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Len(resp.Failures, 1)
		s.Equal("insufficient_inventory", resp.Failures[0].Reason)
	})

	s.Run("validation: malformed bodies return 400", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: invalid items from the usecase return 400", func() {
		s.mockCommands.EXPECT().ReserveTickets(gomock.Any(), b.SessionID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("quantity must be positive"), commands.ErrInvalidReservationItem)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: infrastructure failure returns 500", func() {
		s.mockCommands.EXPECT().ReserveTickets(gomock.Any(), b.SessionID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), commands.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	b := builder.NewReservationBuilder()
	url := "/reservations/" + b.SessionID

	s.Run("success: returns 200 OK with reservation state", func() {
		s.mockQueries.EXPECT().GetBySessionID(gomock.Any(), b.SessionID).
			Return(b.BuildViewQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ReservationResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(b.SessionID, resp.SessionID)
		s.Len(resp.Lines, 1)
	})

	s.Run("error: unknown session returns 404", func() {
		s.mockQueries.EXPECT().GetBySessionID(gomock.Any(), b.SessionID).
			Return(nil, infra.WrapRepoErr("no reservation", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
