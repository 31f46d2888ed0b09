package card

import "fmt"

// Holder is anyone owning a deck of cards, usually a player.
type Holder interface {
	Name() string
	Deck() *Deck
}

// Turner is the turn order as seen by a played card.
type Turner interface {
	Current() Holder
	// Peek returns the next holder in the current direction without moving.
	Peek() Holder
	Skip(count int)
	Reverse()
}

// Table is the part of a running game that card effects act upon.
type Table interface {
	Turns() Turner
	PickupPile() *Deck
	// Skip and Reverse move the turn order by a single step.
	Skip()
	Reverse()
}

// forcePickup moves amount cards from the pickup pile into the deck of the
// player who is next in turn. The pile is left untouched when it is too small.
func forcePickup(table Table, amount int) error {
	next := table.Turns().Peek()
	cards, err := table.PickupPile().Pick(amount)
	if err != nil {
		return fmt.Errorf("%s cannot pick up %d cards: %w", next.Name(), amount, err)
	}
	next.Deck().AddCards(cards)
	return nil
}
