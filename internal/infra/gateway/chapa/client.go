// Package chapa is the HTTP adapter for the Chapa payment gateway.
package chapa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/sony/gobreaker"
)

const (
	initializePath = "/v1/transaction/initialize"
	verifyPath     = "/v1/transaction/verify/"
	breakerName    = "chapa"

	maxBodyBytes = 1 << 20
)

var (
	errUnexpectedStatus = errs.New("unexpected gateway status code")
	errRejected         = errs.New("gateway rejected the request")
	errUpstream         = errs.New("gateway server error")
	errDecode           = errs.New("malformed gateway response")
)

// Recorder receives call timings and breaker transitions.
type Recorder interface {
	ObserveGateway(operation, outcome string, d time.Duration)
	SetBreakerState(name string, state int)
}

type Client struct {
	baseURL   string
	secretKey string
	hc        *http.Client
	breaker   *gobreaker.CircuitBreaker
	metrics   Recorder
}

var _ shared.PaymentGateway = (*Client)(nil)

func NewClient(cfg config.ChapaConfig, metrics Recorder) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		secretKey: cfg.SecretKey,
		hc:        &http.Client{Timeout: cfg.Timeout},
		metrics:   metrics,
	}

	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			if c.metrics != nil {
				c.metrics.SetBreakerState(name, int(to))
			}
		},
	})
	return c
}

type initializePayload struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	TxRef       string `json:"tx_ref"`
	CallbackURL string `json:"callback_url"`
	ReturnURL   string `json:"return_url"`
}

type initializeReply struct {
	Message any    `json:"message"`
	Status  string `json:"status"`
	Data    *struct {
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

type verifyReply struct {
	Message any    `json:"message"`
	Status  string `json:"status"`
	Data    *struct {
		Status string `json:"status"`
		TxRef  string `json:"tx_ref"`
	} `json:"data"`
}

// Initialize asks the gateway for a checkout session. Anything but a 200
// with status "success" and a checkout URL is a *shared.GatewayRequestError.
func (c *Client) Initialize(ctx context.Context, req shared.InitializeRequest) (*shared.InitializeResult, error) {
	body, err := json.Marshal(initializePayload{
		Amount:      req.Amount.String(),
		Currency:    req.Currency,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		TxRef:       req.TxRef,
		CallbackURL: req.CallbackURL,
		ReturnURL:   req.ReturnURL,
	})
	if err != nil {
		return nil, errs.Wrap(err, "encode initialize payload")
	}

	res, err := c.call(ctx, "initialize", http.MethodPost, c.baseURL+initializePath, body)
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK {
		return nil, &shared.GatewayRequestError{StatusCode: res.status, Payload: res.body, Err: errUnexpectedStatus}
	}

	var reply initializeReply
	if err := json.Unmarshal(res.body, &reply); err != nil {
		return nil, &shared.GatewayRequestError{StatusCode: res.status, Payload: res.body, Err: errDecode}
	}
	if reply.Status != shared.GatewayStatusSuccess || reply.Data == nil || reply.Data.CheckoutURL == "" {
		return nil, &shared.GatewayRequestError{StatusCode: res.status, Payload: res.body, Err: errRejected}
	}
	return &shared.InitializeResult{CheckoutURL: reply.Data.CheckoutURL}, nil
}

// Verify reports the gateway's view of txRef. A 200 reply is returned as is,
// whatever its status fields say; judging them is the caller's job.
func (c *Client) Verify(ctx context.Context, txRef string) (*shared.VerifyResult, error) {
	res, err := c.call(ctx, "verify", http.MethodGet, c.baseURL+verifyPath+url.PathEscape(txRef), nil)
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK {
		return nil, &shared.GatewayRequestError{StatusCode: res.status, Payload: res.body, Err: errUnexpectedStatus}
	}

	var reply verifyReply
	if err := json.Unmarshal(res.body, &reply); err != nil {
		return nil, &shared.GatewayRequestError{StatusCode: res.status, Payload: res.body, Err: errDecode}
	}

	out := &shared.VerifyResult{Status: reply.Status, Payload: res.body}
	if reply.Data != nil {
		out.TxStatus = reply.Data.Status
	}
	return out, nil
}

type response struct {
	status int
	body   json.RawMessage
}

// call runs one request through the breaker. Transport errors and 5xx
// replies count as breaker failures; 4xx replies do not.
func (c *Client) call(ctx context.Context, operation, method, endpoint string, body []byte) (*response, error) {
	start := time.Now()

	out, err := c.breaker.Execute(func() (interface{}, error) {
		res, err := c.do(ctx, method, endpoint, body)
		if err != nil {
			return nil, err
		}
		if res.status >= http.StatusInternalServerError {
			return res, errUpstream
		}
		return res, nil
	})

	var res *response
	if out != nil {
		res = out.(*response)
	}

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.observe(operation, "circuit_open", start)
		return nil, &shared.GatewayRequestError{
			StatusCode: http.StatusServiceUnavailable,
			Payload:    json.RawMessage(`{"message":"circuit open"}`),
			Err:        errs.Mark(err, shared.ErrGatewayUnavailable),
		}
	case errors.Is(err, errUpstream):
		c.observe(operation, "upstream_error", start)
		return res, nil
	case err != nil:
		c.observe(operation, "unreachable", start)
		slog.WarnContext(ctx, "payment gateway unreachable", "operation", operation, "error", err.Error())
		return nil, &shared.GatewayRequestError{Err: err}
	}

	if res.status == http.StatusOK {
		c.observe(operation, "ok", start)
	} else {
		c.observe(operation, "rejected", start)
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (*response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errs.Wrap(err, "build gateway request")
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "gateway request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.Wrap(err, "read gateway response")
	}
	return &response{status: resp.StatusCode, body: asJSON(raw)}, nil
}

func (c *Client) observe(operation, outcome string, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveGateway(operation, outcome, time.Since(start))
	}
}

// asJSON keeps upstream payloads embeddable in our own JSON responses.
func asJSON(raw []byte) json.RawMessage {
	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(raw) {
		return raw
	}
	quoted, _ := json.Marshal(string(raw))
	return quoted
}
