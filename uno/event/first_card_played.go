package event

import "github.com/ratel-online/uno/uno/card"

var FirstCardPlayed = &firstCardPlayedEmitter{}

type FirstCardPlayedPayload struct {
	GameID string
	Card   card.Card
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

type firstCardPlayedEmitter struct {
	registry
}

// AddListener subscribes listener until the returned function is called.
func (e *firstCardPlayedEmitter) AddListener(listener FirstCardPlayedListener) (remove func()) {
	return e.add(listener)
}

func (e *firstCardPlayedEmitter) Emit(payload FirstCardPlayedPayload) {
	e.each(func(listener interface{}) {
		listener.(FirstCardPlayedListener).OnFirstCardPlayed(payload)
	})
}
