//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakeChapa serves the two gateway endpoints the app calls. Every initialized
// tx_ref verifies as "success" unless a different outcome was queued for it.
type FakeChapa struct {
	server *httptest.Server

	mu          sync.Mutex
	initialized []map[string]any
	outcomes    map[string]string
	rejectInit  bool
}

func NewFakeChapa(t *testing.T) *FakeChapa {
	f := &FakeChapa{outcomes: map[string]string{}}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/transaction/initialize", f.initialize)
	mux.HandleFunc("GET /v1/transaction/verify/{tx_ref}", f.verify)
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func (f *FakeChapa) URL() string { return f.server.URL }

func (f *FakeChapa) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initialized = nil
	f.outcomes = map[string]string{}
	f.rejectInit = false
}

// SetOutcome decides the transaction status reported for txRef.
func (f *FakeChapa) SetOutcome(txRef, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes[txRef] = status
}

func (f *FakeChapa) RejectInitialize() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectInit = true
}

// Initialized returns the payloads received so far.
func (f *FakeChapa) Initialized() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.initialized...)
}

func (f *FakeChapa) initialize(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid API Key", "status": "failed", "data": nil})
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid payload", "status": "failed", "data": nil})
		return
	}

	f.mu.Lock()
	reject := f.rejectInit
	f.initialized = append(f.initialized, payload)
	f.mu.Unlock()

	if reject {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": map[string]any{"currency": []string{"The currency is not supported."}},
			"status":  "failed",
			"data":    nil,
		})
		return
	}

	txRef, _ := payload["tx_ref"].(string)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Hosted Link",
		"status":  "success",
		"data":    map[string]any{"checkout_url": "https://checkout.chapa.co/checkout/payment/" + txRef},
	})
}

func (f *FakeChapa) verify(w http.ResponseWriter, r *http.Request) {
	txRef := r.PathValue("tx_ref")

	f.mu.Lock()
	status, ok := f.outcomes[txRef]
	f.mu.Unlock()
	if !ok {
		status = "success"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Payment details",
		"status":  "success",
		"data":    map[string]any{"status": status, "tx_ref": txRef},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
