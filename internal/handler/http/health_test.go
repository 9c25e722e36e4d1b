package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	router := newAuthTestRouter(&mockAuthService{})

	rec := doJSON(t, router, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	router := newAuthTestRouter(&mockAuthService{})

	rec := doJSON(t, router, http.MethodGet, "/api/health", "")

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
