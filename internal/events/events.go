package events

// Event types pushed over the live-update stream.
const (
	TypeFlip        = "flip"
	TypeHide        = "hide"
	TypeTurn        = "turn"
	TypeLeaderboard = "leaderboard"
	TypeGameOver    = "gameOver"
	TypeState       = "state"
)

// Event is the envelope every stream message is wrapped in.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Flip announces a card being turned face-up.
type Flip struct {
	Card int    `json:"card"`
	Img  string `json:"img"`
}

// Hide announces a matched card being taken out of play.
type Hide struct {
	Card int `json:"card"`
}

// Turn tells a player whether it is now their move. Player names the
// currently active player so spectating clients can show it too.
type Turn struct {
	Turn   bool   `json:"turn"`
	Player string `json:"player"`
}

// LeaderboardEntry is one row of the roster snapshot, in join order.
type LeaderboardEntry struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Ready  bool   `json:"ready"`
	Turn   bool   `json:"turn"`
}

// GameOver carries the final lifecycle state.
type GameOver struct {
	State string `json:"state"`
}

// FlippedCard is a face-up, not-yet-matched slot inside an InitState.
type FlippedCard struct {
	Card int    `json:"card"`
	Img  string `json:"img"`
}

// InitState is the reconciliation view sent as the first message of every
// new subscription. A client that connects late (or reconnects) rebuilds
// its board from this instead of replaying history.
type InitState struct {
	State    string             `json:"state"`
	Ready    bool               `json:"ready"`
	Flipped  []FlippedCard      `json:"flipped"`
	Resolved []int              `json:"resolved"`
	Players  []LeaderboardEntry `json:"players"`
}
