package card

import (
	"github.com/ratel-online/uno/uno/card/color"
)

type ReverseCard struct {
	face
}

func NewReverseCard(number int, color color.Color) *ReverseCard {
	return &ReverseCard{face: face{number: number, color: color}}
}

func (c *ReverseCard) PickupAmount() int {
	return 0
}

func (c *ReverseCard) Matches(other Card) bool {
	return sameColor(c, other)
}

func (c *ReverseCard) Play(player Holder, table Table) error {
	table.Reverse()
	return nil
}

func (c *ReverseCard) String() string {
	return c.format("ReverseCard")
}
