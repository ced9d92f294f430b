package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	srv := NewServer()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
}

func TestHandleRewriteBadJSON(t *testing.T) {
	srv := NewServer()
	req := httptest.NewRequest(http.MethodPost, "/api/rewrite", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRewriteBadMove(t *testing.T) {
	srv := NewServer()
	body, _ := json.Marshal(rewriteRequest{Moves: "Q"})
	req := httptest.NewRequest(http.MethodPost, "/api/rewrite", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRewriteOK(t *testing.T) {
	srv := NewServer()
	body, _ := json.Marshal(rewriteRequest{Moves: "R U R' U'"})
	req := httptest.NewRequest(http.MethodPost, "/api/rewrite", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp rewriteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if resp.Moves != nil {
		require.NotEmpty(t, *resp.Moves)
	}
}
