package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/memgame/memory-backend/internal/events"
	"github.com/memgame/memory-backend/internal/store"
)

func TestStream_InitStateThenLiveEvents(t *testing.T) {
	st := store.New("secret", 2, zap.NewNop())
	require.NoError(t, st.Create("secret", "s1"))
	token, err := st.Join("Alice")
	require.NoError(t, err)

	srv := httptest.NewServer(Handler(st, zap.NewNop(), []string{"*"}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + token
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "done")

	var ev struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, events.TypeState, ev.Type, "stream opens with the reconciliation snapshot")

	// A join elsewhere reaches this stream as a leaderboard update.
	_, err = st.Join("Bob")
	require.NoError(t, err)

	_, data, err = conn.Read(ctx)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, events.TypeLeaderboard, ev.Type)

	var board []events.LeaderboardEntry
	require.NoError(t, json.Unmarshal(ev.Payload, &board))
	require.Len(t, board, 2)
	assert.Equal(t, "Bob", board[1].Name)
}

func TestStream_RejectsMissingOrUnknownToken(t *testing.T) {
	st := store.New("secret", 2, zap.NewNop())
	require.NoError(t, st.Create("secret", "s1"))

	srv := httptest.NewServer(Handler(st, zap.NewNop(), []string{"*"}))
	defer srv.Close()

	for _, target := range []string{srv.URL, srv.URL + "?token=bogus"} {
		resp, err := http.Get(target)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}
