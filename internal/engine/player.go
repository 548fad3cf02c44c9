package engine

import (
	"crypto/rand"
	"math/big"
)

// Player is one seat in a session. The token is the player's only identity:
// possession equals the right to act as that player.
type Player struct {
	Token  string
	Name   string
	Points int
	Ready  bool
	Turn   bool
}

const tokenLength = 30

// NewToken draws a fixed-length alphanumeric bearer token from crypto/rand.
// The space is large enough that collisions never happen in practice, but
// Join still re-draws on one.
func NewToken() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, tokenLength)
	for i := 0; i < tokenLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		token[i] = charset[num.Int64()]
	}
	return string(token), nil
}
