package wire

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prd-coach-api/internal/config"
	apperrors "prd-coach-api/pkg/errors"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.Version = "v-test"
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = "http://127.0.0.1:1/v1/"
	cfg.LLM.Model = "google/gemini-2.5-flash"
	return cfg
}

func TestInitializeAppWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, cleanup, err := InitializeApp(context.Background(), testConfig())
	require.NoError(t, err)
	defer cleanup()

	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/sections", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitializeAppRequiresCredential(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.APIKey = ""

	_, _, err := InitializeApp(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConfiguration))
}

func TestProvideRateLimiterNilWithoutRedis(t *testing.T) {
	assert.Nil(t, ProvideRateLimiter(nil))
}
