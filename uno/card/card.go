package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/color"
)

// Card is a single UNO card. Cards are compared by identity: two cards with
// the same number and colour are still different cards.
type Card interface {
	Number() int
	Color() color.Color
	SetNumber(number int)
	SetColor(color color.Color)
	// PickupAmount is how many cards the next player has to take when this card is played.
	PickupAmount() int
	Matches(other Card) bool
	// Play applies the card's effect once it has been put down by player.
	Play(player Holder, table Table) error
	String() string
}

// face is the number and colour every card carries.
type face struct {
	number int
	color  color.Color
}

func (f *face) Number() int {
	return f.number
}

func (f *face) Color() color.Color {
	return f.color
}

func (f *face) SetNumber(number int) {
	f.number = number
}

func (f *face) SetColor(color color.Color) {
	f.color = color
}

func (f *face) format(kind string) string {
	return fmt.Sprintf("%s(%d, %s)", kind, f.number, f.color)
}

func sameColor(card Card, other Card) bool {
	return other != nil && card.Color() == other.Color()
}
