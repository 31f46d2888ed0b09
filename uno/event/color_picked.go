package event

import "github.com/ratel-online/uno/uno/card/color"

var ColorPicked = &colorPickedEmitter{}

// ColorPickedPayload is sent when a player names the colour of a wild card.
type ColorPickedPayload struct {
	GameID     string
	PlayerName string
	Color      color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

type colorPickedEmitter struct {
	registry
}

func (e *colorPickedEmitter) AddListener(listener ColorPickedListener) (remove func()) {
	return e.add(listener)
}

func (e *colorPickedEmitter) Emit(payload ColorPickedPayload) {
	e.each(func(listener interface{}) {
		listener.(ColorPickedListener).OnColorPicked(payload)
	})
}
