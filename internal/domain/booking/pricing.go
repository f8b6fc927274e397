package booking

import "travel-booking/internal/domain/money"

type PriceCalculator interface {
	Total(pricePerNight money.Money, stay DateRange) (money.Money, error)
}

// NightlyRateCalculator charges price_per_night for every night of the stay.
type NightlyRateCalculator struct{}

func NewNightlyRateCalculator() *NightlyRateCalculator {
	return &NightlyRateCalculator{}
}

func (NightlyRateCalculator) Total(pricePerNight money.Money, stay DateRange) (money.Money, error) {
	nights := stay.Nights()
	if nights <= 0 {
		return money.Money{}, ErrInvalidRange
	}
	return pricePerNight.Times(int64(nights)), nil
}
