//go:build unit || e2e

package builder

import (
	"encoding/json"

	reqdto "travel-booking/internal/handler/dto/request"
)

func (u *UserBuilder) BuildRegisterRequest(password string) reqdto.RegisterUserRequest {
	return reqdto.RegisterUserRequest{
		Email:     u.Email,
		Username:  u.Username,
		Password:  password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

func (l *ListingBuilder) BuildCreateRequest() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Name:          l.Name,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: json.Number(l.PricePerNight),
	}
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ListingID:      b.ListingID,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		NumberOfGuests: b.NumberOfGuests,
	}
}

func (r *ReviewBuilder) BuildRequest() reqdto.ReviewRequest {
	return reqdto.ReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (p *PaymentBuilder) BuildInitializeRequest() reqdto.InitializePaymentRequest {
	return reqdto.InitializePaymentRequest{
		BookingID: p.BookingID,
		Email:     p.Email,
		FirstName: "Guest",
		LastName:  "User",
	}
}
