package player

import (
	"github.com/ratel-online/uno/uno/card"
)

// Player is a participant holding a private deck of cards.
type Player interface {
	Name() string
	Deck() *card.Deck
	// IsPlayable reports whether moves come from outside rather than being chosen automatically.
	IsPlayable() bool
	HasWon() bool
	// PickCard chooses a card to put down on the putdown pile and takes it
	// out of the player's deck. Nil means no card was chosen.
	PickCard(putdown *card.Deck) card.Card
}
