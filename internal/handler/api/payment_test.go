//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	commandsmock "travel-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	metrics      *metricsSpy
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.metrics = &metricsSpy{}
	s.handler = api.NewPaymentHandler(s.mockCommands, s.metrics)

	s.router.POST("/payments/initialize-payment/", s.handler.Initialize)
	s.router.GET("/payments/verify-payment/:tx_ref/", s.handler.Verify)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func (s *PaymentHandlerTestSuite) TestInitialize() {
	url := "/payments/initialize-payment/"
	reqBody := builder.NewPaymentBuilder().BuildInitializeRequest()

	s.Run("success: 200 with checkout url", func() {
		paymentID := uuid.New()
		s.mockCommands.EXPECT().Initialize(gomock.Any(), reqBody.ToInput()).
			Return(&commands.InitializePaymentResult{
				CheckoutURL: "https://checkout.chapa.co/checkout/payment/abc",
				TxRef:       "tx-1",
				PaymentID:   paymentID,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.InitializePaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("https://checkout.chapa.co/checkout/payment/abc", response.CheckoutURL)
		s.Equal("tx-1", response.TxRef)
		s.Equal(paymentID, response.PaymentID)
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockCommands.EXPECT().Initialize(gomock.Any(), reqBody.ToInput()).Return(nil, commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 400 carries the gateway payload as detail", func() {
		payload := json.RawMessage(`{"message":"Invalid currency","status":"failed"}`)
		s.mockCommands.EXPECT().Initialize(gomock.Any(), reqBody.ToInput()).
			Return(nil, &shared.GatewayRequestError{StatusCode: http.StatusBadRequest, Payload: payload})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusBadRequest, rec.Code)
		var env errorEnvelope
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
		s.Equal("Payment gateway request failed", env.Error.Message)
		s.JSONEq(string(payload), string(env.Detail))
	})

	s.Run("error: 502 when the gateway is unreachable", func() {
		s.mockCommands.EXPECT().Initialize(gomock.Any(), reqBody.ToInput()).
			Return(nil, &shared.GatewayRequestError{Err: errors.New("dial tcp: connection refused")})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment gateway request failed")
	})

	s.Run("error: 409 for a booking that is not pending", func() {
		s.mockCommands.EXPECT().Initialize(gomock.Any(), reqBody.ToInput()).Return(nil, booking.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 400 on request validation", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing booking_id", mutate: testutil.Field("booking_id", nil)},
			{name: "malformed booking_id", mutate: testutil.Field("booking_id", "42")},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing email", mutate: testutil.Field("email", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestVerify() {
	bookingID := uuid.New()

	s.Run("success: completed payment confirms the booking", func() {
		s.metrics.verified = nil
		s.mockCommands.EXPECT().Verify(gomock.Any(), "tx-1").Return(&commands.VerifyPaymentResult{
			TxRef:         "tx-1",
			PaymentStatus: payment.StatusCompleted,
			BookingID:     bookingID,
			BookingStatus: booking.StatusConfirmed,
			Changed:       true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/verify-payment/tx-1/", nil, "")

		var response resdto.VerifyPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Payment verified successfully", response.Message)
		s.Equal("completed", response.PaymentStatus)
		s.Equal("confirmed", response.BookingStatus)
		s.Equal(bookingID, response.BookingID)
		s.Equal([]string{"completed:changed"}, s.metrics.verified)
	})

	s.Run("success: repeated verification is reported unchanged", func() {
		s.metrics.verified = nil
		s.mockCommands.EXPECT().Verify(gomock.Any(), "tx-1").Return(&commands.VerifyPaymentResult{
			TxRef:         "tx-1",
			PaymentStatus: payment.StatusCompleted,
			BookingID:     bookingID,
			BookingStatus: booking.StatusConfirmed,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/verify-payment/tx-1/", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal([]string{"completed"}, s.metrics.verified)
	})

	s.Run("success: failed transaction keeps the booking pending", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), "tx-2").Return(&commands.VerifyPaymentResult{
			TxRef:         "tx-2",
			PaymentStatus: payment.StatusFailed,
			BookingID:     bookingID,
			BookingStatus: booking.StatusPending,
			Changed:       true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/verify-payment/tx-2/", nil, "")

		var response resdto.VerifyPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Payment was not completed", response.Message)
		s.Equal("failed", response.PaymentStatus)
		s.Equal("pending", response.BookingStatus)
	})

	s.Run("error: maps verification failures", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "unknown tx_ref", err: commands.ErrPaymentNotFound, status: http.StatusNotFound},
			{name: "gateway rejected", err: commands.ErrVerificationRejected, status: http.StatusBadRequest},
			{name: "gateway unreachable", err: &shared.GatewayRequestError{Err: errors.New("timeout")}, status: http.StatusBadGateway},
			{
				name:   "circuit open",
				err:    &shared.GatewayRequestError{StatusCode: http.StatusServiceUnavailable, Err: shared.ErrGatewayUnavailable},
				status: http.StatusBadGateway,
			},
			{name: "cancelled booking", err: booking.ErrInvalidTransition, status: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.metrics.verified = nil
				s.mockCommands.EXPECT().Verify(gomock.Any(), "tx-3").Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/verify-payment/tx-3/", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
				s.Empty(s.metrics.verified)
			})
		}
	})
}
