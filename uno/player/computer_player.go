package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type ComputerPlayer struct {
	basicPlayer
}

func NewComputerPlayer(name string) *ComputerPlayer {
	return &ComputerPlayer{basicPlayer: newBasicPlayer(name)}
}

func (p *ComputerPlayer) IsPlayable() bool {
	return false
}

// PickCard takes the first card in deck order that matches the top of the
// putdown pile.
func (p *ComputerPlayer) PickCard(putdown *card.Deck) card.Card {
	top := putdown.Top()
	if top == nil {
		return nil
	}
	for _, candidate := range p.deck.Cards() {
		if candidate.Matches(top) {
			p.deck.Remove(candidate)
			return candidate
		}
	}
	return nil
}

// PickColor names the colour a wild card should take: the one most common in
// the player's deck, red when the deck holds no coloured cards.
func (p *ComputerPlayer) PickColor() color.Color {
	counts := make(map[color.Color]int)
	for _, c := range p.deck.Cards() {
		counts[c.Color()]++
	}
	var picked color.Color = color.Red
	for _, candidate := range color.All {
		if candidate != color.Black && counts[candidate] > counts[picked] {
			picked = candidate
		}
	}
	return picked
}
