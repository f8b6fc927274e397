package shared

import (
	"context"
	"encoding/json"
	"fmt"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/errs"
)

const GatewayStatusSuccess = "success"

var (
	ErrGatewayRequest = errs.New("payment gateway request failed")
	// ErrGatewayUnavailable marks requests refused locally, such as by an open circuit breaker.
	ErrGatewayUnavailable = errs.New("payment gateway unavailable")
)

// GatewayRequestError carries the upstream status and body. StatusCode is 0
// when the gateway could not be reached at all.
type GatewayRequestError struct {
	StatusCode int
	Payload    json.RawMessage
	Err        error
}

func (e *GatewayRequestError) Error() string {
	msg := "payment gateway request failed"
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GatewayRequestError) Unwrap() error { return e.Err }

func (e *GatewayRequestError) Is(target error) bool { return target == ErrGatewayRequest }

// Unreachable reports failures where the upstream never answered the request.
func (e *GatewayRequestError) Unreachable() bool {
	return e.StatusCode == 0 || errs.Is(e.Err, ErrGatewayUnavailable)
}

type InitializeRequest struct {
	Amount      money.Money
	Currency    string
	Email       string
	FirstName   string
	LastName    string
	TxRef       string
	CallbackURL string
	ReturnURL   string
}

type InitializeResult struct {
	CheckoutURL string
}

type VerifyResult struct {
	// Status is the envelope status, TxStatus the status of the transaction itself.
	Status   string
	TxStatus string
	Payload  json.RawMessage
}

func (r *VerifyResult) Succeeded() bool { return r.Status == GatewayStatusSuccess }

func (r *VerifyResult) Paid() bool { return r.Succeeded() && r.TxStatus == GatewayStatusSuccess }

type PaymentGateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error)
	Verify(ctx context.Context, txRef string) (*VerifyResult, error)
}
