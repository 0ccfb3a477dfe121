package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "prd-coach-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"rate limited", apperrors.ErrRateLimited, http.StatusTooManyRequests, apperrors.ErrRateLimited.Message},
		{"wrapped app error", fmt.Errorf("relay: %w", apperrors.ErrQuotaExhausted), http.StatusPaymentRequired, apperrors.ErrQuotaExhausted.Message},
		{"plain error", errors.New("dial tcp 10.0.0.7:443: connection refused"), http.StatusInternalServerError, apperrors.ErrInternalError.Message},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := FromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondErrorHidesInternalText(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/prd/export", nil)

	RespondError(c, errors.New("open /etc/prd-coach/secret.yaml: permission denied"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.ErrInternalError.Message, body.Error)
	assert.NotContains(t, w.Body.String(), "secret.yaml")
}
