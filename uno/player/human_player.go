package player

import (
	"github.com/ratel-online/uno/uno/card"
)

type HumanPlayer struct {
	basicPlayer
}

func NewHumanPlayer(name string) *HumanPlayer {
	return &HumanPlayer{basicPlayer: newBasicPlayer(name)}
}

func (p *HumanPlayer) IsPlayable() bool {
	return true
}

// PickCard never chooses for a human; the selection comes from outside.
func (p *HumanPlayer) PickCard(putdown *card.Deck) card.Card {
	return nil
}
