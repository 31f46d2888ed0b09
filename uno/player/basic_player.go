package player

import (
	"github.com/ratel-online/uno/uno/card"
)

// basicPlayer carries what every player has in common. It is not a Player
// on its own: choosing moves belongs to the concrete players.
type basicPlayer struct {
	name string
	deck *card.Deck
}

func newBasicPlayer(name string) basicPlayer {
	return basicPlayer{name: name, deck: card.NewDeck()}
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) Deck() *card.Deck {
	return p.deck
}

func (p basicPlayer) HasWon() bool {
	return p.deck.Empty()
}

func (p basicPlayer) String() string {
	return p.name
}
