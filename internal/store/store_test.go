package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/memgame/memory-backend/internal/engine"
	"github.com/memgame/memory-backend/internal/events"
)

const adminKey = "secret"

func newStore() *Store {
	return New(adminKey, 2, zap.NewNop())
}

func TestCreate(t *testing.T) {
	st := newStore()

	assert.ErrorIs(t, st.Create("wrong", "s1"), ErrUnauthorized)
	require.NoError(t, st.Create(adminKey, "s1"))
	assert.ErrorIs(t, st.Create(adminKey, "s2"), ErrAlreadyExists)
}

func TestDelete_IsIdempotent(t *testing.T) {
	st := newStore()

	assert.ErrorIs(t, st.Delete("wrong"), ErrUnauthorized)
	require.NoError(t, st.Delete(adminKey), "deleting an absent session is fine")

	require.NoError(t, st.Create(adminKey, "s1"))
	require.NoError(t, st.Delete(adminKey))
	require.NoError(t, st.Delete(adminKey))

	_, err := st.Ping("")
	assert.ErrorIs(t, err, ErrNoGame)
}

func TestCheckKey(t *testing.T) {
	st := newStore()
	assert.NoError(t, st.CheckKey(adminKey))
	assert.ErrorIs(t, st.CheckKey("wrong"), ErrUnauthorized)
}

func TestJoin_RequiresSession(t *testing.T) {
	st := newStore()
	_, err := st.Join("Alice")
	assert.ErrorIs(t, err, ErrNoGame)
}

func TestPing_SignalsRevokedToken(t *testing.T) {
	st := newStore()
	require.NoError(t, st.Create(adminKey, "s1"))

	token, err := st.Join("Alice")
	require.NoError(t, err)

	res, err := st.Ping(token)
	require.NoError(t, err)
	assert.Equal(t, "s1", res.SessionID)
	assert.True(t, res.TokenValid)

	// The token dies with its session, even once a new one exists.
	require.NoError(t, st.Delete(adminKey))
	require.NoError(t, st.Create(adminKey, "s2"))

	res, err = st.Ping(token)
	require.NoError(t, err)
	assert.Equal(t, "s2", res.SessionID)
	assert.False(t, res.TokenValid)
}

func TestSubscribe_FirstEventIsInitState(t *testing.T) {
	st := newStore()
	require.NoError(t, st.Create(adminKey, "s1"))
	token, err := st.Join("Alice")
	require.NoError(t, err)

	ch, id, err := st.Subscribe(token)
	require.NoError(t, err)
	defer st.Unsubscribe(token, id)

	ev := <-ch
	require.Equal(t, events.TypeState, ev.Type)
	snap := ev.Payload.(events.InitState)
	assert.Equal(t, string(engine.StateLobby), snap.State)
	assert.False(t, snap.Ready)
	require.Len(t, snap.Players, 1)
	assert.Equal(t, "Alice", snap.Players[0].Name)
}

func TestSubscribe_UnknownToken(t *testing.T) {
	st := newStore()
	require.NoError(t, st.Create(adminKey, "s1"))

	_, _, err := st.Subscribe("bogus")
	assert.ErrorIs(t, err, engine.ErrInvalidToken)

	require.NoError(t, st.Delete(adminKey))
	_, _, err = st.Subscribe("bogus")
	assert.ErrorIs(t, err, ErrNoGame)
}

func TestDelete_ClosesSubscriptions(t *testing.T) {
	st := newStore()
	require.NoError(t, st.Create(adminKey, "s1"))
	token, err := st.Join("Alice")
	require.NoError(t, err)

	ch, id, err := st.Subscribe(token)
	require.NoError(t, err)
	<-ch // InitState

	require.NoError(t, st.Delete(adminKey))

	_, ok := <-ch
	assert.False(t, ok, "delete should close live streams")

	// Late detach from the dead connection must not panic.
	st.Unsubscribe(token, id)
}

func TestFullGameThroughStore(t *testing.T) {
	st := newStore() // 2-pair board
	require.NoError(t, st.Create(adminKey, "s1"))

	alice, err := st.Join("Alice")
	require.NoError(t, err)
	bob, err := st.Join("Bob")
	require.NoError(t, err)

	status, err := st.Ready(alice)
	require.NoError(t, err)
	assert.Equal(t, engine.ReadyPending, status)

	status, err = st.Ready(bob)
	require.NoError(t, err)
	assert.Equal(t, engine.ReadyStarted, status)

	// Alice holds the opening turn; Bob is rejected.
	_, err = st.Pick(bob, 0)
	assert.ErrorIs(t, err, engine.ErrNotYourTurn)

	res, err := st.Pick(alice, 0)
	require.NoError(t, err)
	assert.Equal(t, engine.AwaitingSecondPick, res.Outcome)
	assert.NotEmpty(t, res.Image)
	assert.True(t, res.Turn)
}
