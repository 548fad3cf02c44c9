package engine

import "math/rand"

// Card is one slot on the board. A resolved card has been matched and is
// permanently out of play; a flipped card is face-up awaiting resolution.
type Card struct {
	ImageID  string
	Flipped  bool
	Resolved bool
}

// Board is the ordered set of card slots for a session.
type Board []Card

// NewBoard builds a board of pairs*2 face-down cards, every image appearing
// in exactly two slots, shuffled into random positions. pairs is clamped to
// the number of distinct images available.
func NewBoard(images []string, pairs int) Board {
	if pairs > len(images) {
		pairs = len(images)
	}
	b := make(Board, 0, pairs*2)
	for i := 0; i < pairs; i++ {
		b = append(b, Card{ImageID: images[i]}, Card{ImageID: images[i]})
	}
	rand.Shuffle(len(b), func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
	return b
}

// Pending returns the slot of the current first pick of a round: the unique
// flipped, non-resolved card. By invariant there is at most one at the
// moment a new pick begins.
func (b Board) Pending() (int, bool) {
	for i, c := range b {
		if c.Flipped && !c.Resolved {
			return i, true
		}
	}
	return 0, false
}

// AllResolved reports whether every slot has been matched away.
func (b Board) AllResolved() bool {
	for _, c := range b {
		if !c.Resolved {
			return false
		}
	}
	return true
}

// ResolvedSlots lists the slots taken out of play so far.
func (b Board) ResolvedSlots() []int {
	slots := []int{}
	for i, c := range b {
		if c.Resolved {
			slots = append(slots, i)
		}
	}
	return slots
}
