package state

import (
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

// eventPrinter tells the terminal what happened in one session.
type eventPrinter struct {
	session *Session
}

// subscribe adds p to every emitter until the returned function is called.
func subscribe(p *eventPrinter) (remove func()) {
	removers := []func(){
		event.FirstCardPlayed.AddListener(p),
		event.CardPlayed.AddListener(p),
		event.CardsPicked.AddListener(p),
		event.ColorPicked.AddListener(p),
		event.PlayerPassed.AddListener(p),
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

func (p *eventPrinter) running(gameID string) bool {
	return p.session.Game.ID() == gameID
}

func (p *eventPrinter) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	if p.running(payload.GameID) {
		ui.Print(msg.Message.FirstCardPlayed(payload.Card))
	}
}

func (p *eventPrinter) OnCardPlayed(payload event.CardPlayedPayload) {
	if p.running(payload.GameID) {
		ui.Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
	}
}

func (p *eventPrinter) OnCardsPicked(payload event.CardsPickedPayload) {
	if !p.running(payload.GameID) {
		return
	}
	picker := p.session.Game.Turns().Find(payload.PlayerName)
	if picker != nil && picker.IsPlayable() {
		ui.Print(msg.Message.HumanPlayerDrewCards(payload.Cards))
		return
	}
	ui.Print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (p *eventPrinter) OnColorPicked(payload event.ColorPickedPayload) {
	if p.running(payload.GameID) {
		ui.Print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
	}
}

func (p *eventPrinter) OnPlayerPassed(payload event.PlayerPassedPayload) {
	if p.running(payload.GameID) {
		ui.Print(msg.Message.PlayerPassed(payload.PlayerName))
	}
}
