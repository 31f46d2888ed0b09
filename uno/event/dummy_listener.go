package event

// DummyListener records every payload it receives, in order. It listens to
// every emitter of the package.
type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

// Subscribe adds l to every emitter and returns the function that removes it again.
func (l *DummyListener) Subscribe() (remove func()) {
	removers := []func(){
		FirstCardPlayed.AddListener(l),
		CardPlayed.AddListener(l),
		CardsPicked.AddListener(l),
		ColorPicked.AddListener(l),
		PlayerPassed.AddListener(l),
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) record(payload interface{}) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnCardsPicked(payload CardsPickedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.record(payload)
}
