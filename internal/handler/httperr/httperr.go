package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/review"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var ErrUnauthorized = errs.New("unauthorized")

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type rule struct {
	target error
	status int
}

// Checked in order; the message sent to the client is the sentinel's text.
var rules = []rule{
	{access.ErrForbidden, http.StatusForbidden},

	{booking.ErrDateConflict, http.StatusConflict},
	{booking.ErrInvalidTransition, http.StatusConflict},
	{commands.ErrSlugTaken, http.StatusConflict},
	{commands.ErrUserAlreadyExists, http.StatusConflict},
	{commands.ErrListingHasBookings, http.StatusConflict},
	{listing.ErrListingLocked, http.StatusConflict},

	{commands.ErrBookingNotFound, http.StatusNotFound},
	{commands.ErrPaymentNotFound, http.StatusNotFound},
	{commands.ErrListingNotFound, http.StatusNotFound},
	{commands.ErrReviewNotFound, http.StatusNotFound},
	{queries.ErrBookingNotFound, http.StatusNotFound},
	{queries.ErrListingNotFound, http.StatusNotFound},
	{queries.ErrUserNotFound, http.StatusNotFound},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized},
	{commands.ErrUserNotFound, http.StatusUnauthorized},
	{commands.ErrTokenValidation, http.StatusUnauthorized},
	{commands.ErrUserInactive, http.StatusUnauthorized},
	{queries.ErrUserInactive, http.StatusUnauthorized},

	{booking.ErrPastDate, http.StatusBadRequest},
	{booking.ErrListingUnavailable, http.StatusBadRequest},
	{booking.ErrInvalidRange, http.StatusBadRequest},
	{booking.ErrInvalidGuests, http.StatusBadRequest},
	{payment.ErrInvalidTxRef, http.StatusBadRequest},
	{commands.ErrVerificationRejected, http.StatusBadRequest},
	{payment.ErrInvalidEmail, http.StatusBadRequest},
	{payment.ErrInvalidAmount, http.StatusBadRequest},
	{listing.ErrInvalidName, http.StatusBadRequest},
	{listing.ErrInvalidLocation, http.StatusBadRequest},
	{listing.ErrInvalidPrice, http.StatusBadRequest},
	{listing.ErrInvalidSlug, http.StatusBadRequest},
	{money.ErrInvalidAmount, http.StatusBadRequest},
	{money.ErrNegativeAmount, http.StatusBadRequest},
	{review.ErrInvalidRating, http.StatusBadRequest},
	{review.ErrEmptyComment, http.StatusBadRequest},
	{review.ErrCommentTooLong, http.StatusBadRequest},
	{user.ErrInvalidEmail, http.StatusBadRequest},
	{user.ErrInvalidRole, http.StatusBadRequest},
	{user.ErrPasswordTooWeak, http.StatusBadRequest},
	{user.ErrInvalidUsername, http.StatusBadRequest},
	{user.ErrNameTooLong, http.StatusBadRequest},
	{commands.ErrRoleNotAllowed, http.StatusBadRequest},
	{queries.ErrInvalidCursor, http.StatusBadRequest},
	{queries.ErrInvalidStatus, http.StatusBadRequest},
}

// Resolve maps a use case error to a status, a client message and an optional detail.
// Unknown errors become a generic 500.
func Resolve(err error) (int, string, any) {
	var gwErr *shared.GatewayRequestError
	if errors.As(err, &gwErr) {
		status := http.StatusBadRequest
		if gwErr.Unreachable() {
			status = http.StatusBadGateway
		}
		return status, "Payment gateway request failed", gatewayDetail(gwErr)
	}

	for _, r := range rules {
		if errs.Is(err, r.target) {
			return r.status, r.target.Error(), nil
		}
	}
	return http.StatusInternalServerError, "Internal server error", nil
}

// Handle aborts with whatever Resolve decides.
func Handle(c *gin.Context, err error) {
	status, msg, detail := Resolve(err)
	AbortWithError(c, status, err, msg, detail)
}

// gatewayDetail passes the upstream JSON through unchanged when it parses.
func gatewayDetail(e *shared.GatewayRequestError) any {
	if len(e.Payload) > 0 && json.Valid(e.Payload) {
		return e.Payload
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return nil
}
