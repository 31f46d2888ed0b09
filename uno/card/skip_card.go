package card

import (
	"github.com/ratel-online/uno/uno/card/color"
)

type SkipCard struct {
	face
}

func NewSkipCard(number int, color color.Color) *SkipCard {
	return &SkipCard{face: face{number: number, color: color}}
}

func (c *SkipCard) PickupAmount() int {
	return 0
}

func (c *SkipCard) Matches(other Card) bool {
	return sameColor(c, other)
}

// Play moves the turn one extra step, so the player after the next one is
// up once the game advances as usual.
func (c *SkipCard) Play(player Holder, table Table) error {
	table.Skip()
	return nil
}

func (c *SkipCard) String() string {
	return c.format("SkipCard")
}
