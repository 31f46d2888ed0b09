package event

var PlayerPassed = &playerPassedEmitter{}

// PlayerPassedPayload is sent when a player ends the turn without putting a card down.
type PlayerPassedPayload struct {
	GameID     string
	PlayerName string
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type playerPassedEmitter struct {
	registry
}

// AddListener subscribes listener until the returned function is called.
func (e *playerPassedEmitter) AddListener(listener PlayerPassedListener) (remove func()) {
	return e.add(listener)
}

func (e *playerPassedEmitter) Emit(payload PlayerPassedPayload) {
	e.each(func(listener interface{}) {
		listener.(PlayerPassedListener).OnPlayerPassed(payload)
	})
}
