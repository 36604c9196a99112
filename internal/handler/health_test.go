package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDBPool struct {
	pingErr error
}

func (s *stubDBPool) Ping(ctx context.Context) error { return s.pingErr }
func (s *stubDBPool) Close()                         {}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	HandleHealthz()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleReadyz(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()
		HandleReadyz(&stubDBPool{})(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("database down", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()
		HandleReadyz(&stubDBPool{pingErr: errors.New("refused")})(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "unavailable", resp.Status)
	})
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	HandleVersion()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Version)
	assert.NotEmpty(t, resp.GoVersion)
}
