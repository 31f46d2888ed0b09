package state

import (
	"errors"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
)

type turn struct{}

func (*turn) Next(session *Session) (consts.StateID, error) {
	g := session.Game
	p := g.Current()

	selected, err := selectCard(session, p)
	if err != nil {
		return 0, err
	}
	if selected == nil {
		drawn, err := g.Draw(p)
		if err != nil && err != consts.ErrorsPickupPileEmpty {
			return 0, err
		}
		if drawn != nil && drawn.Matches(g.PutdownPile().Top()) {
			selected = drawn
		}
	}

	if selected == nil {
		g.Pass(p)
	} else if err := play(session, p, selected); errors.Is(err, card.ErrNotEnoughCards) {
		g.Pass(p)
	} else if err != nil {
		return 0, err
	}

	if g.Winner() != nil {
		return consts.StateOver, nil
	}
	session.turns++
	if session.MaxTurns > 0 && session.turns >= session.MaxTurns {
		return consts.StateOver, nil
	}
	g.NextPlayer()
	return consts.StateTurn, nil
}

// selectCard returns the card p wants to put down, or nil when p draws instead.
func selectCard(session *Session, p player.Player) (card.Card, error) {
	top := session.Game.PutdownPile().Top()
	if !p.IsPlayable() {
		selected := p.PickCard(session.Game.PutdownPile())
		if selected != nil {
			// computer players take the card out of their deck themselves
			p.Deck().AddCard(selected)
		}
		return selected, nil
	}

	ui.Print(msg.Message.HumanPlayerTurnStarted(p.Name()))
	ui.Println(session.Game.ExtractState(p).String())
	playable := p.Deck().Playable(top)
	if len(playable) == 0 {
		ui.Print(msg.Message.HumanPlayerHasNoMatchingCardsInHand(p.Name(), top))
		return nil, nil
	}
	return ui.PromptCardSelection(playable)
}

func play(session *Session, p player.Player, selected card.Card) error {
	g := session.Game
	next := g.Turns().Peek()
	if err := g.Play(p, selected); err != nil {
		return err
	}
	if selected.Color() == color.Black {
		picked, err := pickColor(p)
		if err != nil {
			return err
		}
		if err := g.PickColor(p, selected, picked); err != nil {
			return err
		}
	}
	switch selected.(type) {
	case *card.SkipCard:
		ui.Print(msg.Message.PlayerTurnSkipped(next.Name()))
	case *card.ReverseCard:
		ui.Print(msg.Message.TurnOrderReversed())
	}
	return nil
}

func pickColor(p player.Player) (color.Color, error) {
	if computer, ok := p.(*player.ComputerPlayer); ok {
		return computer.PickColor(), nil
	}
	return ui.PromptColor()
}
