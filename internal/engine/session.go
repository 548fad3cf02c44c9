package engine

import (
	"github.com/memgame/memory-backend/internal/events"
	"github.com/memgame/memory-backend/internal/hub"
)

// State is the session lifecycle. Transitions only ever move forward:
// Lobby -> Running -> Finished.
type State string

const (
	StateLobby    State = "lobby"
	StateRunning  State = "running"
	StateFinished State = "finished"
)

// ReadyStatus is the outcome of marking a player ready.
type ReadyStatus string

const (
	ReadyPending ReadyStatus = "Pending"
	ReadyStarted ReadyStatus = "Started"
)

// PickOutcome describes how a pick resolved.
type PickOutcome string

const (
	// AwaitingSecondPick: first pick of a round, the card is now armed.
	AwaitingSecondPick PickOutcome = "awaiting_second_pick"
	Matched            PickOutcome = "matched"
	Mismatched         PickOutcome = "mismatched"
)

// PickResult is returned to the acting player. Turn reports whether they
// still hold the turn after resolution.
type PickResult struct {
	Outcome PickOutcome
	Image   string
	Turn    bool
}

// Session is the unit of game truth: board, ordered roster, lifecycle and
// turn state, plus the hub that pushes updates to subscribed players.
// Sessions are not safe for concurrent use; the store serializes access.
type Session struct {
	ID string

	board   Board
	players []*Player
	byToken map[string]*Player
	state   State
	turnIdx int
	hub     *hub.Hub
}

// NewSession deals a freshly shuffled board of the given pair count from the
// default image set and opens the lobby.
func NewSession(id string, pairs int) *Session {
	return NewSessionWithBoard(id, NewBoard(DefaultImages, pairs))
}

// NewSessionWithBoard opens a lobby over a caller-supplied board. Used for
// fixed layouts.
func NewSessionWithBoard(id string, board Board) *Session {
	return &Session{
		ID:      id,
		board:   board,
		byToken: make(map[string]*Player),
		state:   StateLobby,
		hub:     hub.New(),
	}
}

func (s *Session) State() State { return s.state }

func (s *Session) Hub() *hub.Hub { return s.hub }

func (s *Session) Board() Board { return s.board }

// Player looks up a seat by token. Every caller must handle the miss, even
// where a token was validated moments ago: the roster can change between
// operations.
func (s *Session) Player(token string) (*Player, bool) {
	p, ok := s.byToken[token]
	return p, ok
}

// Players returns the roster in join order.
func (s *Session) Players() []*Player { return s.players }

// Join seats a new player. Allowed only while the lobby is open; display
// names are the uniqueness key, tokens are always freshly drawn.
func (s *Session) Join(name string) (*Player, error) {
	if s.state != StateLobby {
		return nil, ErrAlreadyRunning
	}
	for _, p := range s.players {
		if p.Name == name {
			return nil, ErrDuplicateName
		}
	}

	token, err := NewToken()
	for err == nil {
		if _, taken := s.byToken[token]; !taken {
			break
		}
		token, err = NewToken()
	}
	if err != nil {
		return nil, err
	}

	p := &Player{Token: token, Name: name}
	s.players = append(s.players, p)
	s.byToken[token] = p
	s.broadcastLeaderboard()
	return p, nil
}

// MarkReady flags the player as ready and starts the game once everyone is.
// Re-marking an already-ready player is a no-op that still re-checks the
// all-ready condition.
func (s *Session) MarkReady(token string) (ReadyStatus, error) {
	p, ok := s.byToken[token]
	if !ok {
		return "", ErrInvalidToken
	}
	p.Ready = true

	for _, q := range s.players {
		if !q.Ready {
			s.broadcastLeaderboard()
			return ReadyPending, nil
		}
	}

	if s.state == StateLobby {
		s.state = StateRunning
		s.turnIdx = 0
		s.players[s.turnIdx].Turn = true
	}
	s.broadcastLeaderboard()
	s.broadcastTurn()
	return ReadyStarted, nil
}

// Pick resolves one card pick for the player holding token. First pick of a
// round arms the slot; the second consumes it as a match or mismatch.
func (s *Session) Pick(token string, slot int) (PickResult, error) {
	if s.state != StateRunning {
		return PickResult{}, ErrNotRunning
	}
	p, ok := s.byToken[token]
	if !ok {
		return PickResult{}, ErrInvalidToken
	}
	if !p.Turn {
		return PickResult{}, ErrNotYourTurn
	}
	if slot < 0 || slot >= len(s.board) {
		return PickResult{}, ErrInvalidCard
	}
	card := &s.board[slot]
	if card.Flipped || card.Resolved {
		return PickResult{}, ErrAlreadyFlipped
	}

	pending, hasPending := s.board.Pending()

	card.Flipped = true
	s.hub.Broadcast(events.Event{
		Type:    events.TypeFlip,
		Payload: events.Flip{Card: slot, Img: card.ImageID},
	})

	if !hasPending {
		return PickResult{Outcome: AwaitingSecondPick, Image: card.ImageID, Turn: true}, nil
	}

	res := PickResult{Image: card.ImageID}
	if s.board[pending].ImageID == card.ImageID {
		res.Outcome = Matched
		p.Points++
		for _, i := range []int{slot, pending} {
			s.board[i].Resolved = true
			s.board[i].Flipped = false
			s.hub.Broadcast(events.Event{
				Type:    events.TypeHide,
				Payload: events.Hide{Card: i},
			})
		}
		if s.board.AllResolved() {
			s.state = StateFinished
			p.Turn = false
			s.hub.Broadcast(events.Event{
				Type:    events.TypeGameOver,
				Payload: events.GameOver{State: string(s.state)},
			})
		}
	} else {
		res.Outcome = Mismatched
		p.Turn = false
		for i := range s.board {
			if s.board[i].Flipped && !s.board[i].Resolved {
				s.board[i].Flipped = false
			}
		}
		s.turnIdx = (s.turnIdx + 1) % len(s.players)
		s.players[s.turnIdx].Turn = true
		s.broadcastTurn()
	}
	res.Turn = p.Turn
	s.broadcastLeaderboard()
	return res, nil
}

// Snapshot builds the InitState view for token: everything a newly connected
// or reconnecting client needs to reconstruct the board without history.
func (s *Session) Snapshot(token string) (events.InitState, error) {
	p, ok := s.byToken[token]
	if !ok {
		return events.InitState{}, ErrInvalidToken
	}

	flipped := []events.FlippedCard{}
	for i, c := range s.board {
		if c.Flipped && !c.Resolved {
			flipped = append(flipped, events.FlippedCard{Card: i, Img: c.ImageID})
		}
	}
	return events.InitState{
		State:    string(s.state),
		Ready:    p.Ready,
		Flipped:  flipped,
		Resolved: s.board.ResolvedSlots(),
		Players:  s.Leaderboard(),
	}, nil
}

// Leaderboard is the roster snapshot in join order.
func (s *Session) Leaderboard() []events.LeaderboardEntry {
	entries := make([]events.LeaderboardEntry, 0, len(s.players))
	for _, p := range s.players {
		entries = append(entries, events.LeaderboardEntry{
			Name:   p.Name,
			Points: p.Points,
			Ready:  p.Ready,
			Turn:   p.Turn,
		})
	}
	return entries
}

func (s *Session) broadcastLeaderboard() {
	s.hub.Broadcast(events.Event{
		Type:    events.TypeLeaderboard,
		Payload: s.Leaderboard(),
	})
}

// broadcastTurn tells every subscriber whose move it is. The payload is
// per-recipient: each player learns whether the turn is theirs, plus the
// active player's name.
func (s *Session) broadcastTurn() {
	active := ""
	for _, p := range s.players {
		if p.Turn {
			active = p.Name
			break
		}
	}
	for _, p := range s.players {
		s.hub.SendTo(p.Token, events.Event{
			Type:    events.TypeTurn,
			Payload: events.Turn{Turn: p.Turn, Player: active},
		})
	}
}
