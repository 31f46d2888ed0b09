package card

import (
	"errors"
	"strings"

	"github.com/ratel-online/core/util/rand"
)

var (
	// ErrNotEnoughCards is returned when more cards are picked than a deck holds.
	ErrNotEnoughCards = errors.New("not enough cards in deck")
	ErrNegativeAmount = errors.New("amount of cards cannot be negative")
)

// Deck is an ordered pile of cards whose top is the end of the slice.
type Deck struct {
	cards []Card
}

// NewDeck returns a deck holding cards, bottom first. The deck never shares
// its backing slice with the caller's argument.
func NewDeck(cards ...Card) *Deck {
	deck := &Deck{cards: make([]Card, 0, len(cards))}
	deck.cards = append(deck.cards, cards...)
	return deck
}

// Cards returns the live backing slice, so element writes are seen by the
// deck. Use the deck's methods for anything that changes its length.
func (d *Deck) Cards() []Card {
	return d.cards
}

func (d *Deck) Amount() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Pick removes amount cards from the top and returns them topmost first.
// If the deck holds fewer cards it is left unchanged and ErrNotEnoughCards is returned.
func (d *Deck) Pick(amount int) ([]Card, error) {
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	if amount > len(d.cards) {
		return nil, ErrNotEnoughCards
	}
	picked := make([]Card, 0, amount)
	for i := 0; i < amount; i++ {
		last := len(d.cards) - 1
		picked = append(picked, d.cards[last])
		d.cards[last] = nil
		d.cards = d.cards[:last]
	}
	return picked, nil
}

func (d *Deck) PickOne() (Card, error) {
	cards, err := d.Pick(1)
	if err != nil {
		return nil, err
	}
	return cards[0], nil
}

func (d *Deck) AddCard(card Card) {
	d.cards = append(d.cards, card)
}

// Bury puts card underneath all the others.
func (d *Deck) Bury(card Card) {
	d.cards = append([]Card{card}, d.cards...)
}

func (d *Deck) AddCards(cards []Card) {
	d.cards = append(d.cards, cards...)
}

// Top returns the card on top without removing it, or nil for an empty deck.
func (d *Deck) Top() Card {
	if len(d.cards) == 0 {
		return nil
	}
	return d.cards[len(d.cards)-1]
}

// Remove takes the given card out of the deck, keeping the order of the rest.
func (d *Deck) Remove(card Card) bool {
	for index, cardInDeck := range d.cards {
		if cardInDeck == card {
			copy(d.cards[index:], d.cards[index+1:])
			d.cards[len(d.cards)-1] = nil
			d.cards = d.cards[:len(d.cards)-1]
			return true
		}
	}
	return false
}

// Playable returns the cards that can be put down on top, in deck order.
func (d *Deck) Playable(top Card) []Card {
	var playable []Card
	for _, candidate := range d.cards {
		if candidate.Matches(top) {
			playable = append(playable, candidate)
		}
	}
	return playable
}

func (d *Deck) String() string {
	names := make([]string, 0, len(d.cards))
	for _, card := range d.cards {
		names = append(names, card.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
