package commands

import "travel-booking/internal/pkg/errs"

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrPaymentNotFound    = errs.New("payment not found")
	ErrListingNotFound    = errs.New("listing not found")
	ErrReviewNotFound     = errs.New("review not found")
	ErrSlugTaken          = errs.New("listing slug already taken")
	ErrListingHasBookings = errs.New("listing has bookings and cannot be deleted")
	ErrUserAlreadyExists  = errs.New("user with this email or username already exists")
	ErrRoleNotAllowed     = errs.New("role cannot be self-assigned")
)
