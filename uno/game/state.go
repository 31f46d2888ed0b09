package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/player"
)

// State is what one player is allowed to see of the game.
type State struct {
	GameID            string         `json:"gameId"`
	LastPlayedCard    string         `json:"lastPlayedCard"`
	PickupPileSize    int            `json:"pickupPileSize"`
	CurrentPlayer     string         `json:"currentPlayer"`
	CurrentPlayerHand []string       `json:"currentPlayerHand"`
	PlayerSequence    []string       `json:"playerSequence"`
	PlayerHandCounts  map[string]int `json:"playerHandCounts"`
}

// ExtractState builds the state as seen by p, listing players in turn order
// starting from whoever is up.
func (g *Game) ExtractState(p player.Player) State {
	playerSequence := make([]string, 0, len(g.turns.Players()))
	playerHandCounts := make(map[string]int, len(g.turns.Players()))

	g.turns.ForEach(func(other player.Player) {
		playerSequence = append(playerSequence, other.Name())
		playerHandCounts[other.Name()] = other.Deck().Amount()
	})

	state := State{
		GameID:            g.id,
		PickupPileSize:    g.pickup.Amount(),
		CurrentPlayer:     g.turns.Current().Name(),
		CurrentPlayerHand: cardNames(p.Deck().Cards()),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
	}
	if top := g.putdown.Top(); top != nil {
		state.LastPlayedCard = top.String()
	}
	return state
}

// Snapshot encodes the state seen by p as JSON.
func (g *Game) Snapshot(p player.Player) []byte {
	return json.Marshal(g.ExtractState(p))
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: [%s]", strings.Join(s.CurrentPlayerHand, " ")))

	return strings.Join(lines, "\n")
}

func cardNames(cards []card.Card) []string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.String())
	}
	return names
}
