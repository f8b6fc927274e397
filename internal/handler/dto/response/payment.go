package response

import (
	"time"

	"travel-booking/internal/domain/payment"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"booking_id"`
	TxRef     string    `json:"tx_ref"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPaymentViews(vs []*queries.PaymentView) []PaymentResponse {
	return mapAll(vs, func(v *queries.PaymentView) PaymentResponse {
		var resp PaymentResponse
		mustCopy(&resp, v)
		return resp
	})
}

type InitializePaymentResponse struct {
	CheckoutURL string    `json:"checkout_url"`
	TxRef       string    `json:"tx_ref"`
	PaymentID   uuid.UUID `json:"payment_id"`
}

func FromInitializeResult(r *commands.InitializePaymentResult) InitializePaymentResponse {
	var resp InitializePaymentResponse
	mustCopy(&resp, r)
	return resp
}

type VerifyPaymentResponse struct {
	Message       string    `json:"message"`
	TxRef         string    `json:"tx_ref"`
	PaymentStatus string    `json:"payment_status"`
	BookingID     uuid.UUID `json:"booking_id"`
	BookingStatus string    `json:"booking_status"`
}

func FromVerifyResult(r *commands.VerifyPaymentResult) VerifyPaymentResponse {
	msg := "Payment verified successfully"
	if r.PaymentStatus != payment.StatusCompleted {
		msg = "Payment was not completed"
	}
	return VerifyPaymentResponse{
		Message:       msg,
		TxRef:         r.TxRef,
		PaymentStatus: r.PaymentStatus.String(),
		BookingID:     r.BookingID,
		BookingStatus: r.BookingStatus.String(),
	}
}
