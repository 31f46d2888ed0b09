package event

import "github.com/ratel-online/uno/uno/card"

var CardsPicked = &cardsPickedEmitter{}

// CardsPickedPayload is sent when cards move from the pickup pile into a player's deck.
type CardsPickedPayload struct {
	GameID     string
	PlayerName string
	Cards      []card.Card
}

type CardsPickedListener interface {
	OnCardsPicked(CardsPickedPayload)
}

type cardsPickedEmitter struct {
	registry
}

// AddListener subscribes listener until the returned function is called.
func (e *cardsPickedEmitter) AddListener(listener CardsPickedListener) (remove func()) {
	return e.add(listener)
}

func (e *cardsPickedEmitter) Emit(payload CardsPickedPayload) {
	e.each(func(listener interface{}) {
		listener.(CardsPickedListener).OnCardsPicked(payload)
	})
}
