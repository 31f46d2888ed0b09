package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/player"
)

// Game owns the piles and the turn order of one round of UNO. It does not
// advance turns on its own: whoever drives the game calls NextPlayer after
// every card has been played.
type Game struct {
	id      string
	turns   *Turns
	pickup  *card.Deck
	putdown *card.Deck
}

func New(pickupPile *card.Deck, players []player.Player) *Game {
	return &Game{
		id:      uuid.New().String(),
		turns:   NewTurns(players),
		pickup:  pickupPile,
		putdown: card.NewDeck(),
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Turns() *Turns {
	return g.turns
}

func (g *Game) PickupPile() *card.Deck {
	return g.pickup
}

func (g *Game) PutdownPile() *card.Deck {
	return g.putdown
}

func (g *Game) Current() player.Player {
	return g.turns.Current()
}

// Skip moves the turn order a single step without it counting as the normal advance.
func (g *Game) Skip() {
	g.turns.Skip(1)
}

func (g *Game) Reverse() {
	g.turns.Reverse()
}

func (g *Game) NextPlayer() player.Player {
	return g.turns.Next()
}

// Table is the view of the game handed to card effects.
func (g *Game) Table() card.Table {
	return table{game: g}
}

// Deal gives every player handSize cards from the pickup pile, in turn order.
func (g *Game) Deal(handSize int) error {
	if handSize <= 0 {
		return consts.ErrorsHandSizeInvalid
	}
	var err error
	g.turns.ForEach(func(p player.Player) {
		if err != nil {
			return
		}
		var hand []card.Card
		hand, err = g.pickup.Pick(handSize)
		if err != nil {
			err = fmt.Errorf("deal %d cards to %s: %w", handSize, p.Name(), err)
			return
		}
		p.Deck().AddCards(hand)
	})
	if err != nil {
		return err
	}
	log.Infof("[%s] dealt %d cards to %d players\n", g.id, handSize, len(g.turns.Players()))
	return nil
}

// PlayFirstCard turns over the top of the pickup pile to start the putdown
// pile. The first card has no effect. Wild cards are buried at the bottom of
// the pickup pile until a coloured card shows up, so the first player always
// has a colour to follow. A pile holding nothing but wild cards starts with one.
func (g *Game) PlayFirstCard() (card.Card, error) {
	first, err := g.pickup.PickOne()
	if err != nil {
		return nil, consts.ErrorsPickupPileEmpty
	}
	for first.Color() == color.Black && hasColored(g.pickup) {
		g.pickup.Bury(first)
		first, _ = g.pickup.PickOne()
	}
	g.putdown.AddCard(first)
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		GameID: g.id,
		Card:   first,
	})
	return first, nil
}

// Play takes c out of p's deck, puts it down and applies its effect. The
// card is handed back when the effect fails.
func (g *Game) Play(p player.Player, c card.Card) error {
	if top := g.putdown.Top(); top != nil && !c.Matches(top) {
		return consts.ErrorsCardNotPlayable
	}
	if !p.Deck().Remove(c) {
		return consts.ErrorsCardNotInHand
	}
	g.putdown.AddCard(c)

	if g.pickup.Amount() < c.PickupAmount() {
		g.replenish()
	}

	next := g.turns.Peek()
	before := next.Deck().Amount()
	if err := c.Play(p, g.Table()); err != nil {
		g.putdown.Remove(c)
		p.Deck().AddCard(c)
		return err
	}
	log.Infof("[%s] %s played %s\n", g.id, p.Name(), c)
	event.CardPlayed.Emit(event.CardPlayedPayload{
		GameID:     g.id,
		PlayerName: p.Name(),
		Card:       c,
	})

	if picked := next.Deck().Cards()[before:]; len(picked) > 0 {
		g.emitPicked(next, picked)
	}
	return nil
}

// PickColor gives the wild card c that p has just put down its colour.
func (g *Game) PickColor(p player.Player, c card.Card, picked color.Color) error {
	if picked == nil || picked == color.Black {
		return consts.ErrorsColorInvalid
	}
	if c.Color() != color.Black || g.putdown.Top() != c {
		return consts.ErrorsCardNotPlayable
	}
	c.SetColor(picked)
	log.Infof("[%s] %s picked %s\n", g.id, p.Name(), picked)
	event.ColorPicked.Emit(event.ColorPickedPayload{
		GameID:     g.id,
		PlayerName: p.Name(),
		Color:      picked,
	})
	return nil
}

// Draw moves one card from the pickup pile into p's deck.
func (g *Game) Draw(p player.Player) (card.Card, error) {
	if g.pickup.Empty() {
		g.replenish()
	}
	drawn, err := g.pickup.PickOne()
	if err != nil {
		return nil, consts.ErrorsPickupPileEmpty
	}
	p.Deck().AddCard(drawn)
	g.emitPicked(p, []card.Card{drawn})
	return drawn, nil
}

func (g *Game) Pass(p player.Player) {
	event.PlayerPassed.Emit(event.PlayerPassedPayload{
		GameID:     g.id,
		PlayerName: p.Name(),
	})
}

// Winner returns the first player without cards, or nil while nobody has won.
func (g *Game) Winner() player.Player {
	for _, p := range g.turns.Players() {
		if p.HasWon() {
			return p
		}
	}
	return nil
}

// replenish shuffles everything but the top of the putdown pile back into the pickup pile.
func (g *Game) replenish() {
	if g.putdown.Amount() < 2 {
		return
	}
	top, _ := g.putdown.PickOne()
	recycled, _ := g.putdown.Pick(g.putdown.Amount())
	g.putdown.AddCard(top)
	for _, c := range recycled {
		if _, wild := c.(*card.Pickup4Card); wild {
			c.SetColor(color.Black)
		}
	}
	g.pickup.AddCards(recycled)
	g.pickup.Shuffle()
	log.Infof("[%s] shuffled %d played cards back into the pickup pile\n", g.id, len(recycled))
}

func hasColored(deck *card.Deck) bool {
	for _, c := range deck.Cards() {
		if c.Color() != color.Black {
			return true
		}
	}
	return false
}

func (g *Game) emitPicked(p player.Player, picked []card.Card) {
	cards := make([]card.Card, len(picked))
	copy(cards, picked)
	event.CardsPicked.Emit(event.CardsPickedPayload{
		GameID:     g.id,
		PlayerName: p.Name(),
		Cards:      cards,
	})
}

type table struct {
	game *Game
}

func (t table) Turns() card.Turner {
	return turner{turns: t.game.turns}
}

func (t table) PickupPile() *card.Deck {
	return t.game.pickup
}

func (t table) Skip() {
	t.game.Skip()
}

func (t table) Reverse() {
	t.game.Reverse()
}

type turner struct {
	turns *Turns
}

func (t turner) Current() card.Holder {
	return t.turns.Current()
}

func (t turner) Peek() card.Holder {
	return t.turns.Peek()
}

func (t turner) Skip(count int) {
	t.turns.Skip(count)
}

func (t turner) Reverse() {
	t.turns.Reverse()
}
