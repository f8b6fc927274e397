//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	commandsmock "travel-booking/tests/mock/commands"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	mockPayments *queriesmock.MockPaymentQueries
	metrics      *metricsSpy
	handler      *api.BookingHandler
	actor        access.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockPayments = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.metrics = &metricsSpy{}
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockPayments, s.metrics)
	s.actor = access.NewActor(uuid.New(), user.RoleGuest)

	auth := fakeAuth(s.actor.ID, s.actor.Role)
	s.router.GET("/bookings", auth, s.handler.List)
	s.router.POST("/bookings", auth, s.handler.Create)
	s.router.GET("/bookings/:id", auth, s.handler.Get)
	s.router.POST("/bookings/:id/cancel", auth, s.handler.Cancel)
	s.router.GET("/bookings/:id/payments", auth, s.handler.Payments)
	// no auth in front: the handler itself must refuse anonymous callers
	s.router.POST("/open/bookings", s.handler.Create)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	b := builder.NewBookingBuilder().WithGuestID(s.actor.ID)
	reqBody := b.BuildRequest()

	s.Run("success: 201 with nights, total and nested listing", func() {
		s.metrics.bookings = nil
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor.ID, reqBody.ToInput()).
			Return(&commands.BookingResult{BookingID: b.ID, Status: booking.StatusPending}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal("2024-06-01", response.StartDate)
		s.Equal("2024-06-04", response.EndDate)
		s.Equal(3, response.NumberOfNights)
		s.Equal("300.00", response.TotalPrice)
		s.Equal("pending", response.Status)
		s.Equal("Lakeside Cabin", response.Listing.Name)
		s.Equal("100.00", response.Listing.PricePerNight)
		s.Equal(s.actor.ID, response.Guest.ID)
		s.Equal([]string{"created"}, s.metrics.bookings)
	})

	s.Run("error: validator failures map to 400 and 409", func() {
		cases := []struct {
			name    string
			err     error
			status  int
			outcome string
		}{
			{name: "past date", err: booking.ErrPastDate, status: http.StatusBadRequest, outcome: "rejected"},
			{name: "unavailable listing", err: booking.ErrListingUnavailable, status: http.StatusBadRequest, outcome: "rejected"},
			{name: "inverted range", err: booking.ErrInvalidRange, status: http.StatusBadRequest, outcome: "rejected"},
			{name: "overlap", err: booking.ErrDateConflict, status: http.StatusConflict, outcome: "conflict"},
			{name: "unknown listing", err: commands.ErrListingNotFound, status: http.StatusNotFound, outcome: "error"},
			{name: "store failure", err: errors.New("db down"), status: http.StatusInternalServerError, outcome: "error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.metrics.bookings = nil
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor.ID, reqBody.ToInput()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
				s.Equal([]string{tc.outcome}, s.metrics.bookings)
			})
		}
	})

	s.Run("error: 400 on request validation", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing listing_id", mutate: testutil.Field("listing_id", nil)},
			{name: "malformed start_date", mutate: testutil.Field("start_date", "06/01/2024")},
			{name: "missing end_date", mutate: testutil.Field("end_date", nil)},
			{name: "zero guests", mutate: testutil.Field("number_of_guests", 0)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 for anonymous callers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/open/bookings", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: status filter and paging", func() {
		v := builder.NewBookingBuilder().WithGuestID(s.actor.ID).WithStatus(booking.StatusConfirmed).BuildView()
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor, queries.BookingFilter{Status: "confirmed"}, nil, 10).
			Return([]*queries.BookingView{v}, &queries.Cursor{After: "c2"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=confirmed&limit=10", nil, "token")

		var response resdto.Page[resdto.BookingResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Results, 1)
		s.Equal("confirmed", response.Results[0].Status)
		s.Equal("c2", response.NextCursor)
	})

	s.Run("error: 400 for an unknown status", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor, queries.BookingFilter{Status: "done"}, nil, queries.DefaultListLimit).
			Return(nil, nil, queries.ErrInvalidStatus)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=done", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status filter")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("error: 403 for a stranger", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, id).Return(nil, access.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, id).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/123", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	b := builder.NewBookingBuilder().WithGuestID(s.actor.ID)
	url := "/bookings/" + b.ID.String() + "/cancel"

	s.Run("success: returns the cancelled booking", func() {
		s.metrics.bookings = nil
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, b.ID).
			Return(&commands.BookingResult{BookingID: b.ID, Status: booking.StatusCancelled}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, b.ID).
			Return(b.WithStatus(booking.StatusCancelled).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
		s.Equal([]string{"cancelled"}, s.metrics.bookings)
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, b.ID).Return(nil, booking.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 403 for the listing owner", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, b.ID).Return(nil, access.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *BookingHandlerTestSuite) TestPayments() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/payments"

	s.Run("success: lists payments with formatted amounts", func() {
		views := []*queries.PaymentView{
			builder.NewPaymentBuilder().WithBookingID(bookingID).WithStatus(payment.StatusFailed).BuildView(),
			builder.NewPaymentBuilder().WithBookingID(bookingID).WithTxRef("second").WithStatus(payment.StatusCompleted).BuildView(),
		}
		s.mockPayments.EXPECT().ListByBooking(gomock.Any(), s.actor, bookingID).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("300.00", response[0].Amount)
		s.Equal("failed", response[0].Status)
		s.Equal("completed", response[1].Status)
		s.NotContains(rec.Body.String(), "guest@example.com")
	})

	s.Run("error: 403 for a listing owner", func() {
		s.mockPayments.EXPECT().ListByBooking(gomock.Any(), s.actor, bookingID).Return(nil, access.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
