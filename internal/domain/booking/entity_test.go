//go:build unit

package booking_test

import (
	"math/rand"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingNow = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

func newServices() *booking.Services {
	return booking.NewServices(clock.NewMockClock(bookingNow), time.UTC)
}

func TestNewBooking(t *testing.T) {
	services := newServices()
	listing := availableListing()
	guestID := uuid.New()

	t.Run("three nights at 100 per night", func(t *testing.T) {
		b, err := booking.NewBooking(services, listing, guestID, stay("2024-06-01", "2024-06-04"), 2, nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, listing.ID, b.ListingID())
		assert.Equal(t, guestID, b.GuestID())
		assert.Equal(t, guestID, b.Principal())
		assert.Equal(t, 3, b.NumberOfNights())
		assert.Equal(t, 2, b.NumberOfGuests())
		assert.Equal(t, "300.00", b.TotalPrice().String())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, bookingNow, b.CreatedAt())
	})

	t.Run("overlapping pending booking", func(t *testing.T) {
		existing := []booking.ExistingStay{
			{BookingID: uuid.New(), Stay: stay("2024-06-01", "2024-06-05"), Status: booking.StatusPending},
		}
		b, err := booking.NewBooking(services, listing, guestID, stay("2024-06-04", "2024-06-06"), 1, existing)
		assert.ErrorIs(t, err, booking.ErrDateConflict)
		assert.Nil(t, b)
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := booking.NewBooking(services, listing, guestID, stay("2024-06-04", "2024-06-04"), 1, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := booking.NewBooking(services, listing, guestID, stay("2024-06-04", "2024-06-01"), 1, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("past start is reported before the inverted range", func(t *testing.T) {
		_, err := booking.NewBooking(services, listing, guestID, stay("2024-05-10", "2024-05-01"), 1, nil)
		assert.ErrorIs(t, err, booking.ErrPastDate)
	})

	t.Run("no guests", func(t *testing.T) {
		_, err := booking.NewBooking(services, listing, guestID, stay("2024-06-01", "2024-06-04"), 0, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidGuests)
	})
}

func TestBooking_Transitions(t *testing.T) {
	later := bookingNow.Add(time.Hour)

	testCases := []struct {
		name     string
		from     booking.Status
		action   func(b *booking.Booking) error
		expected booking.Status
		errIs    error
	}{
		{
			name:     "confirm pending",
			from:     booking.StatusPending,
			action:   func(b *booking.Booking) error { return b.Confirm(later) },
			expected: booking.StatusConfirmed,
		},
		{
			name:     "confirm confirmed",
			from:     booking.StatusConfirmed,
			action:   func(b *booking.Booking) error { return b.Confirm(later) },
			expected: booking.StatusConfirmed,
			errIs:    booking.ErrInvalidTransition,
		},
		{
			name:     "confirm cancelled",
			from:     booking.StatusCancelled,
			action:   func(b *booking.Booking) error { return b.Confirm(later) },
			expected: booking.StatusCancelled,
			errIs:    booking.ErrInvalidTransition,
		},
		{
			name:     "cancel pending",
			from:     booking.StatusPending,
			action:   func(b *booking.Booking) error { return b.Cancel(later) },
			expected: booking.StatusCancelled,
		},
		{
			name:     "cancel confirmed",
			from:     booking.StatusConfirmed,
			action:   func(b *booking.Booking) error { return b.Cancel(later) },
			expected: booking.StatusCancelled,
		},
		{
			name:     "cancel cancelled",
			from:     booking.StatusCancelled,
			action:   func(b *booking.Booking) error { return b.Cancel(later) },
			expected: booking.StatusCancelled,
			errIs:    booking.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := reconstruct(tc.from)
			err := tc.action(b)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, bookingNow, b.UpdatedAt(), "rejected transitions leave the booking untouched")
			} else {
				require.NoError(t, err)
				assert.Equal(t, later, b.UpdatedAt())
			}
			assert.Equal(t, tc.expected, b.Status())
		})
	}
}

func reconstruct(status booking.Status) *booking.Booking {
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(),
		stay("2024-06-01", "2024-06-04"),
		1,
		availableListing().PricePerNight.Times(3),
		status,
		bookingNow, bookingNow,
	)
}

// Accepted bookings on one listing never overlap, whatever order requests arrive in.
func TestNewBooking_AcceptedStaysNeverOverlap(t *testing.T) {
	services := newServices()
	listing := availableListing()
	rng := rand.New(rand.NewSource(7))
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	var accepted []booking.ExistingStay
	for i := 0; i < 2000; i++ {
		start := base.AddDate(0, 0, rng.Intn(120))
		end := start.AddDate(0, 0, rng.Intn(10)-1)
		b, err := booking.NewBooking(services, listing, uuid.New(), booking.NewDateRange(start, end), 1, accepted)
		if err != nil {
			continue
		}
		status := booking.StatusPending
		switch rng.Intn(3) {
		case 0:
			require.NoError(t, b.Confirm(bookingNow))
			status = booking.StatusConfirmed
		case 1:
			require.NoError(t, b.Cancel(bookingNow))
			status = booking.StatusCancelled
		}
		accepted = append(accepted, booking.ExistingStay{BookingID: b.ID(), Stay: b.Stay(), Status: status})
	}

	require.NotEmpty(t, accepted)
	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			a, b := accepted[i], accepted[j]
			if a.Status.HoldsDates() && b.Status.HoldsDates() {
				assert.False(t, a.Stay.Overlaps(b.Stay), "%s overlaps %s", a.Stay, b.Stay)
			}
		}
	}
}
