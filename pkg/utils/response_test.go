package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		payload      any
		expectedBody string
	}{
		{name: "Object", code: http.StatusOK, payload: map[string]int{"balance": 5}, expectedBody: `{"balance":5}` + "\n"},
		{name: "No content drops the body", code: http.StatusNoContent, payload: map[string]int{"balance": 5}, expectedBody: ""},
		{name: "Nil payload", code: http.StatusCreated, payload: nil, expectedBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithJSON(w, tt.code, tt.payload)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusConflict, "voucher exhausted")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"voucher exhausted"}`, w.Body.String())
}
