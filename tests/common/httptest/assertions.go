//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"travel-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse decodes 2xx bodies into target when target is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
}

// AssertErrorResponse checks the status and the error envelope; an empty expectedMsg only checks the shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "decode error envelope: %s", w.Body.String())
	assert.NotEmpty(t, resp.Error.Message, "error envelope without message")

	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	return resp
}
