package player_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putdownPile() *card.Deck {
	return card.NewDeck(
		card.NewCard(1, color.Blue),
		card.NewCard(3, color.Red),
		card.NewCard(2, color.Green),
		card.NewCard(4, color.Yellow),
		card.NewCard(6, color.Yellow),
		card.NewCard(10, color.Blue),
	)
}

func TestNewPlayer(t *testing.T) {
	players := []player.Player{
		player.NewHumanPlayer("Test Player"),
		player.NewComputerPlayer("Test Player"),
	}
	for _, p := range players {
		assert.Equal(t, "Test Player", p.Name())
		assert.Empty(t, p.Deck().Cards())
	}
}

func TestPlayersDoNotShareDecks(t *testing.T) {
	first := player.NewHumanPlayer("first")
	second := player.NewHumanPlayer("second")
	first.Deck().AddCard(card.NewCard(1, color.Red))
	require.True(t, second.HasWon())
	require.NotSame(t, first.Deck(), second.Deck())
}

func TestIsPlayable(t *testing.T) {
	require.True(t, player.NewHumanPlayer("Test Player").IsPlayable())
	require.False(t, player.NewComputerPlayer("Test Player").IsPlayable())
}

func TestHasWon(t *testing.T) {
	p := player.NewComputerPlayer("Test Player")
	require.True(t, p.HasWon())

	p.Deck().AddCard(card.NewCard(9, color.Blue))
	p.Deck().AddCard(card.NewCard(8, color.Red))
	p.Deck().AddCard(card.NewCard(7, color.Black))
	require.False(t, p.HasWon())

	_, err := p.Deck().Pick(3)
	require.NoError(t, err)
	require.True(t, p.HasWon())
}

func TestHumanPickCard(t *testing.T) {
	pile := putdownPile()
	p := player.NewHumanPlayer("Test Player")
	p.Deck().AddCards(append([]card.Card{}, pile.Cards()...))

	require.Nil(t, p.PickCard(pile))
	require.Equal(t, 6, p.Deck().Amount())
}

func TestComputerPickCard(t *testing.T) {
	t.Run("returns_nil_when_nothing_matches", func(t *testing.T) {
		p := player.NewComputerPlayer("Test Player")
		p.Deck().AddCard(card.NewCard(6, color.Yellow))

		require.Nil(t, p.PickCard(putdownPile()))
		require.Equal(t, 1, p.Deck().Amount())
	})

	t.Run("takes_the_first_match_in_deck_order", func(t *testing.T) {
		cards := []card.Card{
			card.NewCard(6, color.Yellow),
			card.NewCard(10, color.Yellow),
			card.NewCard(3, color.Red),
			card.NewCard(2, color.Green),
			card.NewCard(4, color.Blue),
			card.NewCard(5, color.Yellow),
		}
		p := player.NewComputerPlayer("Test Player")
		p.Deck().AddCards(cards)

		picked := p.PickCard(putdownPile())
		require.Same(t, cards[1], picked)
		require.Equal(t, []card.Card{cards[0], cards[2], cards[3], cards[4], cards[5]}, p.Deck().Cards())

		picked = p.PickCard(putdownPile())
		require.Same(t, cards[4], picked)
		require.Equal(t, 4, p.Deck().Amount())
	})

	t.Run("plays_wild_cards_on_anything", func(t *testing.T) {
		wild := card.NewPickup4Card(card.Pickup4Number, color.Black)
		p := player.NewComputerPlayer("Test Player")
		p.Deck().AddCards([]card.Card{card.NewCard(7, color.Red), wild})

		require.Same(t, wild, p.PickCard(putdownPile()))
	})

	t.Run("returns_nil_on_an_empty_putdown_pile", func(t *testing.T) {
		p := player.NewComputerPlayer("Test Player")
		p.Deck().AddCard(card.NewPickup4Card(card.Pickup4Number, color.Black))

		require.Nil(t, p.PickCard(card.NewDeck()))
		require.Equal(t, 1, p.Deck().Amount())
	})
}

func TestCreatePlayers(t *testing.T) {
	players := player.CreatePlayers(5, "Alice")
	require.Len(t, players, 5)
	require.Equal(t, "Alice", players[0].Name())
	require.True(t, players[0].IsPlayable())

	names := map[string]bool{}
	for _, p := range players[1:] {
		require.False(t, p.IsPlayable())
		names[p.Name()] = true
	}
	require.Len(t, names, 4)
}

func TestCreatePlayersClampsTheSeats(t *testing.T) {
	scenarios := []struct {
		description string
		requested   int
		expected    int
	}{
		{"no_seats", 0, 1},
		{"negative_seats", -3, 1},
		{"human_only", 1, 1},
		{"more_than_the_bots", player.MaxBots + 5, player.MaxBots + 1},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			players := player.CreatePlayers(scenario.requested, "Alice")
			require.Len(t, players, scenario.expected)
			require.Equal(t, "Alice", players[0].Name())
		})
	}
}

func TestComputerPlayerPickColor(t *testing.T) {
	p := player.NewComputerPlayer("Zoe")
	require.Equal(t, color.Red, p.PickColor())

	p.Deck().AddCards([]card.Card{
		card.NewPickup4Card(card.Pickup4Number, color.Black),
		card.NewPickup4Card(card.Pickup4Number, color.Black),
		card.NewCard(1, color.Green),
		card.NewCard(2, color.Blue),
		card.NewCard(3, color.Blue),
	})
	require.Equal(t, color.Blue, p.PickColor())
}
