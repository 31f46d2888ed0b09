package event

import "github.com/ratel-online/uno/uno/card"

var CardPlayed = &cardPlayedEmitter{}

// CardPlayedPayload is sent after a card has been put down and its effect applied.
type CardPlayedPayload struct {
	GameID     string
	PlayerName string
	Card       card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	registry
}

// AddListener subscribes listener until the returned function is called.
func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) (remove func()) {
	return e.add(listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	e.each(func(listener interface{}) {
		listener.(CardPlayedListener).OnCardPlayed(payload)
	})
}
