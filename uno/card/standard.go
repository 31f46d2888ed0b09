package card

import (
	"github.com/ratel-online/uno/uno/card/color"
)

// Numbers printed on the action cards of a standard deck.
const (
	SkipNumber    = 10
	ReverseNumber = 11
	Pickup2Number = 12
	Pickup4Number = 13
)

// StandardSize is the number of cards in StandardDeck.
const StandardSize = 4*25 + 4

// StandardDeck returns a new unshuffled deck: for every colour one zero, two
// of each number from one to nine and two of each action card, plus four black
// pickup-4 wild cards.
func StandardDeck() *Deck {
	cards := make([]Card, 0, StandardSize)

	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Blue)...)
	cards = append(cards, createBlackCards()...)

	return NewDeck(cards...)
}

func createColorCards(cardColor color.Color) []Card {
	cards := []Card{NewCard(0, cardColor)}

	for number := 1; number <= 9; number++ {
		cards = append(cards, NewCard(number, cardColor), NewCard(number, cardColor))
	}

	for i := 0; i < 2; i++ {
		cards = append(cards,
			NewSkipCard(SkipNumber, cardColor),
			NewReverseCard(ReverseNumber, cardColor),
			NewPickup2Card(Pickup2Number, cardColor),
		)
	}

	return cards
}

func createBlackCards() []Card {
	cards := make([]Card, 0, 4)
	for i := 0; i < 4; i++ {
		cards = append(cards, NewPickup4Card(Pickup4Number, color.Black))
	}
	return cards
}
