package game

import (
	"github.com/ratel-online/uno/uno/player"
)

const (
	backward = -1
	forward  = 1
)

// Turns keeps track of whose turn it is and in which direction play moves.
type Turns struct {
	players   []player.Player
	current   int
	direction int
}

func NewTurns(players []player.Player) *Turns {
	return &Turns{
		players:   players,
		current:   0,
		direction: forward,
	}
}

func (t *Turns) Current() player.Player {
	return t.players[t.current]
}

// Peek returns the next player in the current direction without moving.
func (t *Turns) Peek() player.Player {
	return t.players[t.step(1)]
}

// Skip moves the turn count players further in the current direction.
func (t *Turns) Skip(count int) {
	t.current = t.step(count)
}

func (t *Turns) Next() player.Player {
	t.Skip(1)
	return t.Current()
}

func (t *Turns) Reverse() {
	switch t.direction {
	case forward:
		t.direction = backward
	case backward:
		t.direction = forward
	}
}

func (t *Turns) Direction() int {
	return t.direction
}

func (t *Turns) Players() []player.Player {
	return t.players
}

// Find returns the seated player called name, or nil.
func (t *Turns) Find(name string) player.Player {
	for _, p := range t.players {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// ForEach visits every player once in turn order, starting with the current one.
func (t *Turns) ForEach(function func(player.Player)) {
	for i := 0; i < len(t.players); i++ {
		function(t.players[t.step(i)])
	}
}

func (t *Turns) step(count int) int {
	playerCount := len(t.players)
	offset := (count * t.direction) % playerCount
	return (t.current + offset + playerCount) % playerCount
}
