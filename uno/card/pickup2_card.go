package card

import (
	"github.com/ratel-online/uno/uno/card/color"
)

type Pickup2Card struct {
	face
}

func NewPickup2Card(number int, color color.Color) *Pickup2Card {
	return &Pickup2Card{face: face{number: number, color: color}}
}

func (c *Pickup2Card) PickupAmount() int {
	return 2
}

func (c *Pickup2Card) Matches(other Card) bool {
	return sameColor(c, other)
}

func (c *Pickup2Card) Play(player Holder, table Table) error {
	return forcePickup(table, c.PickupAmount())
}

func (c *Pickup2Card) String() string {
	return c.format("Pickup2Card")
}
