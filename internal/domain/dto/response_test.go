//go:build !integration

package dto

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusUnprocessableEntity, ErrCodeValidation},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestErrorResponse_Builders(t *testing.T) {
	details := map[string]string{"phone": "Telefone inválido"}

	resp := NewError(ErrCodeValidation, "Confira os campos destacados").
		WithDetails(details).
		WithRequestID("req-1")

	assert.Equal(t, ErrCodeValidation, resp.Error)
	assert.Equal(t, "Confira os campos destacados", resp.Message)
	assert.Equal(t, details, resp.Details)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.WithinDuration(t, time.Now(), resp.Timestamp, time.Second)
}

func TestErrorResponse_BuildersDoNotShareState(t *testing.T) {
	base := NewError(ErrCodeRateLimit, "Muitas requisições")

	tagged := base.WithRequestID("req-2")

	assert.Empty(t, base.RequestID)
	assert.Equal(t, "req-2", tagged.RequestID)
}
