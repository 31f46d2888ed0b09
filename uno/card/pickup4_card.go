package card

import (
	"github.com/ratel-online/uno/uno/card/color"
)

// Pickup4Card is the wild card: it can be put down on anything.
type Pickup4Card struct {
	face
}

func NewPickup4Card(number int, color color.Color) *Pickup4Card {
	return &Pickup4Card{face: face{number: number, color: color}}
}

func (c *Pickup4Card) PickupAmount() int {
	return 4
}

func (c *Pickup4Card) Matches(other Card) bool {
	return true
}

func (c *Pickup4Card) Play(player Holder, table Table) error {
	return forcePickup(table, c.PickupAmount())
}

func (c *Pickup4Card) String() string {
	return c.format("Pickup4Card")
}
