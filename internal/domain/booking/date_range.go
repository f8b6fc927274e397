package booking

import (
	"time"

	"travel-booking/internal/pkg/clock"
)

const DateLayout = "2006-01-02"

// DateRange is a half-open stay [start, end) of calendar dates.
// An empty or inverted range is representable; Validate rejects it.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{start: clock.DateOf(start), end: clock.DateOf(end)}
}

// ParseDateRange parses YYYY-MM-DD bounds without checking their order.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, ErrInvalidRange
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, ErrInvalidRange
	}
	return NewDateRange(s, e), nil
}

func (r DateRange) Validate() error {
	if r.Nights() <= 0 {
		return ErrInvalidRange
	}
	return nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Nights() int {
	return NightsBetween(r.start, r.end)
}

func (r DateRange) IsEmpty() bool {
	return r.Nights() <= 0
}

// Overlaps uses start_a < end_b AND end_a > start_b. Empty ranges overlap nothing.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.start.Before(other.end) && r.end.After(other.start)
}

func (r DateRange) String() string {
	return r.start.Format(DateLayout) + "/" + r.end.Format(DateLayout)
}

const secondsPerDay = 24 * 60 * 60

// NightsBetween counts calendar days between two dates, ignoring clock time and DST.
// Day numbers are compared directly since time.Duration overflows past ~292 years.
func NightsBetween(start, end time.Time) int {
	s, e := clock.DateOf(start), clock.DateOf(end)
	return int((e.Unix() - s.Unix()) / secondsPerDay)
}
