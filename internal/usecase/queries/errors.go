package queries

import "travel-booking/internal/pkg/errs"

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrUserInactive    = errs.New("user inactive")
	ErrListingNotFound = errs.New("listing not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidStatus   = errs.New("invalid status filter")
)
