package api

import (
	"net/http"

	"travel-booking/internal/domain/booking"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingMetrics interface {
	BookingOutcome(outcome string)
}

type BookingHandler struct {
	cmds     commands.BookingCommands
	q        queries.BookingQueries
	payments queries.PaymentQueries
	metrics  BookingMetrics
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, payments queries.PaymentQueries, metrics BookingMetrics) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, payments: payments, metrics: metrics}
}

// @Summary Create booking
// @Description Books a listing for the caller. The booking starts pending until paid.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor.IsAnonymous() {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actor.ID, req.ToInput())
	h.metrics.BookingOutcome(bookingOutcome(err))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusCreated, result)
}

// @Summary List my bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, confirmed or cancelled"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.Page[resdto.BookingResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	filter := queries.BookingFilter{Status: c.Query("status")}
	bookings, next, err := h.q.ListMine(c.Request.Context(), middleware.GetActor(c), filter, cursor, limit)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromBookingViews(bookings), next))
}

// @Summary Get booking
// @Description Visible to the guest, the listing owner and admins
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Guest or admin. Cancelling twice is a conflict.
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.Cancel(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	h.metrics.BookingOutcome("cancelled")
	h.respondWithBooking(c, http.StatusOK, result)
}

// @Summary List payments of a booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/payments [get]
func (h *BookingHandler) Payments(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	payments, err := h.payments.ListByBooking(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentViews(payments))
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, result *commands.BookingResult) {
	view, err := h.q.GetByID(c.Request.Context(), middleware.GetActor(c), result.BookingID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return "created"
	case errs.Is(err, booking.ErrDateConflict):
		return "conflict"
	case errs.Is(err, booking.ErrPastDate),
		errs.Is(err, booking.ErrListingUnavailable),
		errs.Is(err, booking.ErrInvalidRange),
		errs.Is(err, booking.ErrInvalidGuests):
		return "rejected"
	default:
		return "error"
	}
}
