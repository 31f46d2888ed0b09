package card

import (
	"github.com/ratel-online/uno/uno/card/color"
)

// NumberCard is the plain card without any effect.
type NumberCard struct {
	face
}

func NewCard(number int, color color.Color) *NumberCard {
	return &NumberCard{face: face{number: number, color: color}}
}

func (c *NumberCard) PickupAmount() int {
	return 0
}

// Matches reports whether other shares the number or the colour of c.
func (c *NumberCard) Matches(other Card) bool {
	if other == nil {
		return false
	}
	return c.number == other.Number() || c.color == other.Color()
}

func (c *NumberCard) Play(player Holder, table Table) error {
	return nil
}

func (c *NumberCard) String() string {
	return c.format("Card")
}
