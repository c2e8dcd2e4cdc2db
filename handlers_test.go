package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := newTestLogger()
	controller := NewGameController(DefaultConfig(), logger)
	hub := NewHub()
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })
	go hub.Run(done)
	return newRouter(controller, hub, logger)
}

func TestPingHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Equal(t, BoardSize, status.BoardSize)
	require.Equal(t, WinLength, status.WinLength)
	require.Equal(t, "running", status.Status)
	require.NotEmpty(t, status.GameID)
	require.Len(t, status.Board, BoardSize)
}

func TestMoveHandlerRejectsBadPayload(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/move", strings.NewReader("not json")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoveHandlerRejectsOutOfBounds(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/move", strings.NewReader(`{"x": 12, "y": 0}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "out_of_bounds", body["error"])
}

func TestMoveHandlerAppliesMoveAndComputerReply(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/move", strings.NewReader(`{"x": 4, "y": 4}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp moveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Applied, 2)
	require.Equal(t, 1, resp.Applied[0].Player)
	require.Equal(t, 2, resp.Applied[1].Player)
	require.Equal(t, "running", resp.Status)

	// The human cell is now occupied.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/move", strings.NewReader(`{"x": 4, "y": 4}`)))
	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "cell_occupied", body["error"])
}

func TestCacheHandlers(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/move", strings.NewReader(`{"x": 0, "y": 0}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cache", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var status cacheStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Greater(t, status.Entries, 0)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/cache", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cache", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Equal(t, 0, status.Entries)
}

func TestStartHandlerResetsGame(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	var before StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &before))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/start", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var after StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	require.NotEqual(t, before.GameID, after.GameID)
	require.Empty(t, after.History)
}
