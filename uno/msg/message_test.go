package msg_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/ratel-online/uno/uno/card"
	unocolor "github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestMessages(t *testing.T) {
	skip := card.NewSkipCard(card.SkipNumber, unocolor.Red)
	drawn := []card.Card{card.NewCard(3, unocolor.Blue), card.NewCard(4, unocolor.Green)}

	scenarios := []struct {
		description string
		actual      string
		expected    string
	}{
		{"first_card", msg.Message.FirstCardPlayed(skip), "First card is SkipCard(10, red)\n"},
		{"human_drew", msg.Message.HumanPlayerDrewCards(drawn), "You drew [Card(3, blue) Card(4, green)]!\n"},
		{"no_match", msg.Message.HumanPlayerHasNoMatchingCardsInHand("Alice", skip), "Alice, none of your cards match SkipCard(10, red)!\n"},
		{"turn_started", msg.Message.HumanPlayerTurnStarted("Alice"), "It's your turn, Alice!\n"},
		{"drew_one", msg.Message.PlayerDrewCards("Zoe", drawn[:1]), "Zoe drew a card!\n"},
		{"drew_many", msg.Message.PlayerDrewCards("Zoe", drawn), "Zoe drew 2 cards!\n"},
		{"passed", msg.Message.PlayerPassed("Zoe"), "Zoe passed!\n"},
		{"picked_color", msg.Message.PlayerPickedColor("Zoe", unocolor.Green), "Zoe picked green!\n"},
		{"played", msg.Message.PlayerPlayedCard("Zoe", skip), "Zoe played SkipCard(10, red)!\n"},
		{"skipped", msg.Message.PlayerTurnSkipped("Zoe"), "Zoe's turn skipped!\n"},
		{"reversed", msg.Message.TurnOrderReversed(), "Turn order has been reversed!\n"},
		{"welcome", msg.Message.Welcome(), "WELCOME TO UNO\n"},
		{"winner", msg.Message.WinnerFound("Zoe"), "Zoe wins!\n"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.actual)
		})
	}
}

func TestPaintNothing(t *testing.T) {
	require.Equal(t, "nothing", msg.Paint(nil))
}
