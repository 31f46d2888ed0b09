package event_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

func TestPlayerPassed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	defer event.PlayerPassed.AddListener(listenerOne)()
	defer event.PlayerPassed.AddListener(listenerTwo)()

	payloads := []event.PlayerPassedPayload{
		{
			GameID:     "game-1",
			PlayerName: "Someone",
		},
		{
			GameID:     "game-2",
			PlayerName: "Somebody",
		},
	}

	for _, payload := range payloads {
		event.PlayerPassed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
