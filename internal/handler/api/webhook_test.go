//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ticketline/internal/handler/api"
	resdto "ticketline/internal/handler/dto/response"
	"ticketline/internal/pkg/errs"
	"ticketline/internal/usecase/commands"
	"ticketline/tests/common/builder"
	"ticketline/tests/common/httptest"
	"ticketline/tests/common/testutil"
	commandsmock "ticketline/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCommands)

	s.router.POST("/webhooks/payment", s.handler.ConfirmPayment)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

type testCaseWebhook struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestConfirmPayment
// ================================================================================

func (s *WebhookHandlerTestSuite) TestConfirmPayment() {
	url := "/webhooks/payment"

	b := builder.NewPaymentBuilder()
	reqBody := b.BuildWebhookRequestDTO()

	validation := []testCaseWebhook{
		{name: "missing field: session_id (required)", mutate: testutil.Field("session_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer_email (required)", mutate: testutil.Field("customer_email", nil), expectCode: http.StatusBadRequest},
		{name: "invalid customer_email", mutate: testutil.Field("customer_email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "negative amount_cents", mutate: testutil.Field("amount_cents", -100), expectCode: http.StatusBadRequest},
		{name: "missing field: items (required)", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
		{name: "empty items", mutate: testutil.Field("items", []map[string]any{}), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created on first delivery", func() {
		s.mockCommands.EXPECT().CreateOrRetrieveTickets(gomock.Any(), gomock.Any()).
			Return(b.BuildCheckoutResult(true), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.CheckoutResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.True(resp.Created)
		s.Equal(b.Quantity, resp.TicketCount)
		s.Equal(b.SessionID, resp.Order.SessionID)
	})

	s.Run("success: returns 200 OK on redelivery", func() {
		s.mockCommands.EXPECT().CreateOrRetrieveTickets(gomock.Any(), gomock.Any()).
			Return(b.BuildCheckoutResult(false), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.CheckoutResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.False(resp.Created)
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

	// The usecase marks sentinels onto their causes; the handler must
	// still resolve the marked error to its status code.
	s.Run("error: invalid payment event returns 400", func() {
		s.mockCommands.EXPECT().CreateOrRetrieveTickets(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("negative amount"), commands.ErrInvalidPayment)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unknown ticket type returns 422", func() {
		s.mockCommands.EXPECT().CreateOrRetrieveTickets(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("ticket type does not exist"), commands.ErrUnknownTicketType)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: inactive ticket type returns 422", func() {
		s.mockCommands.EXPECT().CreateOrRetrieveTickets(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("ticket type is not on sale"), commands.ErrInactiveTicketType)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: infrastructure failure returns 500", func() {
		s.mockCommands.EXPECT().CreateOrRetrieveTickets(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), commands.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
