// File: server/server_test.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/pongsim/bollywood"
	"github.com/lguibr/pongsim/game"
	"github.com/lguibr/pongsim/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func setupTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	level := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.Disabled)

	engine := bollywood.NewEngine()
	srv := New(engine)
	ts := httptest.NewServer(srv.Handler())

	t.Cleanup(func() {
		ts.Close()
		_ = engine.Shutdown(time.Second)
		zerolog.SetGlobalLevel(level)
	})
	return srv, ts
}

func newTestGame() *game.Game {
	cfg := utils.DefaultConfig()
	cfg.Seed = 1
	return game.NewGame(cfg, game.GameConfig{Player0Name: "Ann", Player1Name: "Bob"})
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/subscribe"
	ws, err := websocket.Dial(url, "", "http://localhost/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func receive(t *testing.T, ws *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var envelope map[string]interface{}
	require.NoError(t, websocket.JSON.Receive(ws, &envelope))
	return envelope
}

func TestHandleState_BeforePublish(t *testing.T) {
	_, ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleState_JSON(t *testing.T) {
	srv, ts := setupTestServer(t)
	g := newTestGame()
	srv.Publish(g.Snapshot())

	resp, err := http.Get(ts.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, g.ID(), body["id"])
	assert.Equal(t, "IDLE", body["state"])
	assert.Equal(t, []interface{}{"Ann", "Bob"}, body["names"])
}

func TestHandleState_ASCII(t *testing.T) {
	srv, ts := setupTestServer(t)
	srv.Publish(newTestGame().Snapshot())

	resp, err := http.Get(ts.URL + "/state?format=ascii&cols=40&rows=12")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(body), "\n"), "\n")
	assert.Len(t, lines, 12)
	assert.Len(t, lines[1], 40)
	assert.Contains(t, lines[0], "Ann 0 : 0 Bob")
}

func TestHandleState_MethodNotAllowed(t *testing.T) {
	_, ts := setupTestServer(t)

	resp, err := http.Post(ts.URL+"/state", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleHealth(t *testing.T) {
	srv, ts := setupTestServer(t)

	check := func(hasState bool) {
		resp, err := http.Get(ts.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		var body healthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, hasState, body.HasState)
	}

	check(false)
	srv.Publish(newTestGame().Snapshot())
	check(true)
}

func TestSubscribe_InitialStateThenEvents(t *testing.T) {
	srv, ts := setupTestServer(t)
	g := newTestGame()
	srv.Attach(g.Events())
	srv.Publish(g.Snapshot())

	ws := dial(t, ts)

	initial := receive(t, ws)
	assert.Equal(t, EnvelopeState, initial["type"])
	state, ok := initial["state"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, g.ID(), state["id"])

	g.StartGame()
	event := receive(t, ws)
	assert.Equal(t, EnvelopeEvent, event["type"])
	assert.Equal(t, "GAME_STATE_CHANGED", event["event"])
	assert.Equal(t, "PLAYING", event["payload"])

	srv.Publish(g.Snapshot())
	update := receive(t, ws)
	assert.Equal(t, EnvelopeState, update["type"])
}

func TestSubscribe_ClientCountTracksConnections(t *testing.T) {
	srv, ts := setupTestServer(t)
	srv.Publish(newTestGame().Snapshot())

	ws := dial(t, ts)
	receive(t, ws) // Initial state means the broadcaster registered the client

	count, err := srv.ClientCount(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, ws.Close())
	assert.Eventually(t, func() bool {
		n, err := srv.ClientCount(time.Second)
		return err == nil && n == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestServer_CloseDisconnectsSpectators(t *testing.T) {
	srv, ts := setupTestServer(t)
	srv.Publish(newTestGame().Snapshot())

	ws := dial(t, ts)
	receive(t, ws)

	srv.Close()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var envelope map[string]interface{}
	assert.Error(t, websocket.JSON.Receive(ws, &envelope))

	_, err := srv.ClientCount(50 * time.Millisecond)
	assert.ErrorIs(t, err, ErrNoBroadcaster)
}
