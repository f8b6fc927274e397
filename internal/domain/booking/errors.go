package booking

import "travel-booking/internal/pkg/errs"

var (
	ErrPastDate           = errs.New("start date cannot be in the past")
	ErrListingUnavailable = errs.New("listing is not available for booking")
	ErrDateConflict       = errs.New("listing is already booked for the selected dates")
	ErrInvalidRange       = errs.New("end date must be after start date")
	ErrInvalidTransition  = errs.New("invalid booking status transition")
	ErrInvalidGuests      = errs.New("number of guests must be at least 1")
	ErrUnknownStatus      = errs.New("unknown booking status")
)
