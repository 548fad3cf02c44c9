package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/memgame/memory-backend/internal/engine"
	"github.com/memgame/memory-backend/internal/events"
)

var ErrUnauthorized = errors.New("invalid master key")
var ErrNoGame = errors.New("no game exists")
var ErrAlreadyExists = errors.New("game already exists")

// Store holds the process's single session behind one reader/writer lock.
// Every external request goes through it: queries take the read side,
// mutations take the write side for the whole operation, broadcasts
// included. Holding the lock across broadcasts is safe because hub sends
// never block.
type Store struct {
	mu       sync.RWMutex
	adminKey string
	pairs    int
	session  *engine.Session
	log      *zap.Logger
}

func New(adminKey string, pairs int, log *zap.Logger) *Store {
	return &Store{adminKey: adminKey, pairs: pairs, log: log}
}

// CheckKey verifies the admin credential without touching the session.
func (st *Store) CheckKey(key string) error {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if key != st.adminKey {
		return ErrUnauthorized
	}
	return nil
}

// Create installs a new session in the lobby state. Rejected while one is
// already live; the old session must be deleted first.
func (st *Store) Create(key, id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if key != st.adminKey {
		return ErrUnauthorized
	}
	if st.session != nil {
		return ErrAlreadyExists
	}
	st.session = engine.NewSession(id, st.pairs)
	st.log.Info("created game", zap.String("id", id))
	return nil
}

// Delete clears the current session, if any, and tears down every live
// stream so stale tokens die with it. Idempotent.
func (st *Store) Delete(key string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if key != st.adminKey {
		return ErrUnauthorized
	}
	if st.session != nil {
		st.session.Hub().DetachAll()
		st.log.Info("deleted game", zap.String("id", st.session.ID))
		st.session = nil
	}
	return nil
}

// Join seats a new player in the lobby and returns their bearer token.
func (st *Store) Join(name string) (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.session == nil {
		return "", ErrNoGame
	}
	p, err := st.session.Join(name)
	if err != nil {
		return "", err
	}
	st.log.Info("player joined", zap.String("name", name))
	return p.Token, nil
}

// Ready marks the player ready; the game starts once everyone is.
func (st *Store) Ready(token string) (engine.ReadyStatus, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.session == nil {
		return "", ErrNoGame
	}
	status, err := st.session.MarkReady(token)
	if err != nil {
		return "", err
	}
	if status == engine.ReadyStarted {
		st.log.Info("game started", zap.String("id", st.session.ID))
	}
	return status, nil
}

// Pick resolves one card pick for the player holding token.
func (st *Store) Pick(token string, slot int) (engine.PickResult, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.session == nil {
		return engine.PickResult{}, ErrNoGame
	}
	res, err := st.session.Pick(token, slot)
	if err != nil {
		return engine.PickResult{}, err
	}
	if p, ok := st.session.Player(token); ok {
		st.log.Info("card picked",
			zap.String("name", p.Name),
			zap.Int("card", slot),
			zap.String("outcome", string(res.Outcome)))
	}
	return res, nil
}

// PingResult reports the live session and whether a presented token is still
// part of its roster. TokenValid going false is the revocation signal.
type PingResult struct {
	SessionID  string
	TokenValid bool
}

// Ping answers status queries. token may be empty; when present, the result
// says whether it still identifies a player.
func (st *Store) Ping(token string) (PingResult, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.session == nil {
		return PingResult{}, ErrNoGame
	}
	res := PingResult{SessionID: st.session.ID, TokenValid: true}
	if token != "" {
		if _, ok := st.session.Player(token); !ok {
			res.TokenValid = false
		}
	}
	return res, nil
}

// Subscribe attaches a fresh live-update stream for token, replacing any
// prior one, and seeds it with the InitState snapshot as its first event.
// The caller must Unsubscribe with the returned id when the connection ends.
func (st *Store) Subscribe(token string) (<-chan events.Event, uuid.UUID, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.session == nil {
		return nil, uuid.Nil, ErrNoGame
	}
	snap, err := st.session.Snapshot(token)
	if err != nil {
		return nil, uuid.Nil, err
	}
	ch, id := st.session.Hub().Attach(token)
	st.session.Hub().SendTo(token, events.Event{Type: events.TypeState, Payload: snap})
	return ch, id, nil
}

// Unsubscribe detaches the stream identified by id. A drop that races with a
// replacement subscription is a no-op; deleting an already-gone session is
// too.
func (st *Store) Unsubscribe(token string, id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.session == nil {
		return
	}
	st.session.Hub().Detach(token, id)
}
